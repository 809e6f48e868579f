package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"github.com/theoremus-urban-solutions/gtfs-frequency/config"
	"github.com/theoremus-urban-solutions/gtfs-frequency/projection"
)

// Piece is one constant-frequency segment of a route, still in
// projected coordinates.
type Piece struct {
	Line  orb.LineString
	Count uint32
}

// Writer emits one GeoJSON file per route and accumulates a combined
// overview collection. Not safe for concurrent use; routes are written
// sequentially after reconciliation.
type Writer struct {
	dir         string
	simplifyM   float64
	strokeScale float64
	combinedMax int
	inverse     projection.Transform

	combined *geojson.FeatureCollection
}

// NewWriter creates the output directory and a writer reprojecting
// geometry back to WGS84 through inverse.
func NewWriter(cfg config.OutputConfig, inverse projection.Transform) (*Writer, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", cfg.Dir, err)
	}
	return &Writer{
		dir:         cfg.Dir,
		simplifyM:   cfg.SimplifyM,
		strokeScale: cfg.StrokeScale,
		combinedMax: cfg.CombinedMaxRoute,
		inverse:     inverse,
		combined:    geojson.NewFeatureCollection(),
	}, nil
}

// WriteRoute serializes one route's partition to <dir>/<routeID>.geojson.
// Features carry the route id, the trip count, the route's stroke color
// and a stroke width linear in the count.
func (w *Writer) WriteRoute(routeID string, pieces []Piece, stroke string) error {
	fc := geojson.NewFeatureCollection()
	include := w.includeInCombined(routeID)
	for _, p := range pieces {
		line := p.Line.Clone()
		if w.simplifyM > 0 {
			line = simplify.DouglasPeucker(w.simplifyM).Simplify(line).(orb.LineString)
		}
		geo, err := projection.Apply(w.inverse, line)
		if err != nil {
			return fmt.Errorf("export: reproject route %s: %w", routeID, err)
		}
		f := geojson.NewFeature(geo)
		f.Properties = geojson.Properties{
			"route":        routeID,
			"count":        p.Count,
			"stroke":       stroke,
			"stroke-width": w.strokeScale * float64(p.Count),
		}
		fc.Append(f)
		if include {
			w.combined.Append(f)
		}
	}
	return w.writeFile(routeID+".geojson", fc)
}

// WriteCombined flushes the accumulated overview collection to the
// given file name inside the output directory.
func (w *Writer) WriteCombined(name string) error {
	return w.writeFile(name, w.combined)
}

func (w *Writer) writeFile(name string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", name, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// includeInCombined keeps the overview file readable by skipping
// high-numbered special services, mirroring the per-route cutoff of the
// original map. Non-numeric route ids are always included.
func (w *Writer) includeInCombined(routeID string) bool {
	if w.combinedMax <= 0 {
		return true
	}
	n, err := strconv.Atoi(routeID)
	if err != nil {
		return true
	}
	return n < w.combinedMax
}
