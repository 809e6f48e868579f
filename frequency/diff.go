package frequency

import (
	"github.com/theoremus-urban-solutions/gtfs-frequency/geometry"
)

// Difference returns the portions of a not covered by b's line. Pieces
// are re-merged into maximal connected lines where touching endpoints
// allow it; each surviving piece inherits a's count. A degenerate
// result (empty, point-only, or nothing longer than the minimum
// tolerance) yields an empty slice.
func (r *Reconciler) Difference(a, b Segment) ([]Segment, error) {
	return r.subtract(a, b.Line)
}

// subtract is Difference generalized over the subtrahend, so that the
// merge operator can subtract a buffered corridor instead of the bare
// line.
func (r *Reconciler) subtract(a Segment, g geometry.Geometry) ([]Segment, error) {
	pieces, err := a.Line.Difference(g).Pieces()
	if err != nil {
		return nil, err
	}
	merged, err := r.Geo.MergeLines(pieces)
	if err != nil {
		return nil, err
	}
	return r.keepLong(merged, a.Count), nil
}
