package pipeline

import (
	"context"
	"log/slog"

	"github.com/theoremus-urban-solutions/gtfs-frequency/config"
	"github.com/theoremus-urban-solutions/gtfs-frequency/export"
	"github.com/theoremus-urban-solutions/gtfs-frequency/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-frequency/projection"
)

// combinedFileName is the overview collection holding every route.
const combinedFileName = "all_routes.geojson"

// paletteSeed pins route colors so reruns over the same feed produce
// identical output.
const paletteSeed = 1

// Summary reports what a run produced.
type Summary struct {
	Routes   int // routes reconciled and written
	Failed   int // routes skipped after an error
	Segments int // constant-frequency segments across all routes
}

// Pipeline runs the full feed-to-GeoJSON flow for one configuration.
type Pipeline struct {
	cfg    *config.AppConfig
	logger *slog.Logger
}

// New creates a pipeline logging through logger.
func New(cfg *config.AppConfig, logger *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger.With("component", "pipeline")}
}

// Run loads the feed, reconciles every route and writes the per-route
// and combined GeoJSON files. Per-route failures are counted in the
// summary; only loading, projection or output setup failures abort the
// run.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	forward, inverse, err := projection.UTM(p.cfg.Projection.UTMZone)
	if err != nil {
		return nil, err
	}

	index, err := gtfs.Load(p.cfg.GTFS.Path, p.cfg.GTFS.Calendars)
	if err != nil {
		return nil, err
	}
	routes := index.RouteIDs()
	p.logger.Info("feed loaded",
		"path", p.cfg.GTFS.Path,
		"routes", len(routes),
		"calendars", len(p.cfg.GTFS.Calendars))

	results := p.reconcileAll(ctx, index, forward, routes)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	writer, err := export.NewWriter(p.cfg.Output, inverse)
	if err != nil {
		return nil, err
	}
	palette := export.NewPalette(p.cfg.Output.PastelFactor, paletteSeed)

	sum := &Summary{}
	for _, routeID := range routes {
		res := results[routeID]
		if res.err != nil {
			p.logger.Error("route skipped", "route", routeID, "error", res.err)
			sum.Failed++
			continue
		}
		stroke := palette.Next().Hex()
		if err := writer.WriteRoute(routeID, res.pieces, stroke); err != nil {
			return nil, err
		}
		p.logger.Info("route written",
			"route", routeID,
			"short_name", index.RouteShortName(routeID),
			"segments", len(res.pieces))
		sum.Routes++
		sum.Segments += len(res.pieces)
	}
	if err := writer.WriteCombined(combinedFileName); err != nil {
		return nil, err
	}
	return sum, nil
}

func (p *Pipeline) workers() int {
	if p.cfg.Jobs > 0 {
		return p.cfg.Jobs
	}
	return defaultWorkers()
}
