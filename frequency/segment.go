package frequency

import (
	"errors"

	"github.com/theoremus-urban-solutions/gtfs-frequency/geometry"
)

// ErrNoConvergence is returned when the reconciliation worklist fails
// to shrink within its round cap. It should never occur with a sane
// geometry backend; it guards against a backend giving inconsistent
// overlap answers for the same pair across rounds.
var ErrNoConvergence = errors.New("frequency: reconciliation did not converge")

// Segment is a connected projected polyline annotated with the number
// of scheduled trips whose path includes it. Segments are immutable:
// the operators consume their inputs and emit fresh values.
type Segment struct {
	Line  *geometry.Line
	Count uint32
}

// Reconciler holds the geometry context and tolerances for one
// reconciliation job. It is not safe for concurrent use; run one
// Reconciler per goroutine.
type Reconciler struct {
	Geo *geometry.Context

	// MinLength is the minimum planar length a piece must exceed to be
	// kept; shorter fragments are discarded at every step.
	MinLength float64

	// BufferTol is the corridor radius used to make intersection tests
	// robust against near-miss coordinates.
	BufferTol float64
}

// keepLong wraps the pieces longer than the minimum tolerance as
// segments carrying the given count.
func (r *Reconciler) keepLong(pieces []*geometry.Line, count uint32) []Segment {
	var out []Segment
	for _, p := range pieces {
		if p.Length() > r.MinLength {
			out = append(out, Segment{Line: p, Count: count})
		}
	}
	return out
}

func filterLong(pieces []*geometry.Line, minLen float64) []*geometry.Line {
	var out []*geometry.Line
	for _, p := range pieces {
		if p.Length() > minLen {
			out = append(out, p)
		}
	}
	return out
}
