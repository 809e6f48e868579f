package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/theoremus-urban-solutions/gtfs-frequency/export"
	"github.com/theoremus-urban-solutions/gtfs-frequency/frequency"
	"github.com/theoremus-urban-solutions/gtfs-frequency/geometry"
	"github.com/theoremus-urban-solutions/gtfs-frequency/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-frequency/projection"
)

type routeResult struct {
	pieces []export.Piece
	err    error
}

// reconcileAll fans the routes out over the worker pool and collects
// one result per route. Each worker owns its geometry context and
// reconciler; routes never share state. Cancelling ctx stops dispatch;
// routes already handed out still finish.
func (p *Pipeline) reconcileAll(ctx context.Context, index *gtfs.Index, forward projection.Transform, routes []string) map[string]routeResult {
	jobs := make(chan string)
	results := make(map[string]routeResult, len(routes))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < p.workers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := &frequency.Reconciler{
				Geo:       geometry.NewContext(),
				MinLength: p.cfg.Tolerance.MinSegmentM,
				BufferTol: p.cfg.Tolerance.BufferM,
			}
			for routeID := range jobs {
				pieces, err := reconcileRoute(rec, index, routeID, forward)
				mu.Lock()
				results[routeID] = routeResult{pieces: pieces, err: err}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, routeID := range routes {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- routeID:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

// reconcileRoute turns one route's candidates into segments of the
// worker's geometry context, reconciles them and copies the resulting
// coordinates back out so nothing references the context afterwards.
func reconcileRoute(rec *frequency.Reconciler, index *gtfs.Index, routeID string, forward projection.Transform) ([]export.Piece, error) {
	candidates, err := index.Candidates(routeID, forward)
	if err != nil {
		return nil, err
	}
	segments := make([]frequency.Segment, 0, len(candidates))
	for _, c := range candidates {
		line, err := rec.Geo.NewLine(c.Line)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", c.ShapeID, err)
		}
		segments = append(segments, frequency.Segment{Line: line, Count: c.Trips})
	}
	partition, err := rec.Reconcile(segments)
	if err != nil {
		return nil, err
	}
	pieces := make([]export.Piece, 0, len(partition))
	for _, s := range partition {
		pieces = append(pieces, export.Piece{Line: s.Line.LineString(), Count: s.Count})
	}
	return pieces, nil
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
