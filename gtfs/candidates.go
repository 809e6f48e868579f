package gtfs

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/gtfs-frequency/projection"
)

// Candidate is one reconciliation input: a projected half-shape
// carrying the full trip count of its source shape.
type Candidate struct {
	ShapeID string
	Line    orb.LineString
	Trips   uint32
}

// Candidates projects every counted shape of a route into the planar
// system and splits it at its midpoint coordinate index into two
// halves, each keeping the shape's full trip count. The split keeps
// lollipop-shaped routes (a loop at the end of a stem) from
// self-overlapping inside a single candidate, which the pairwise merge
// cannot untangle.
func (x *Index) Candidates(routeID string, forward projection.Transform) ([]Candidate, error) {
	var out []Candidate
	for _, shapeID := range x.routes[routeID] {
		raw := x.shapeLine[shapeID]
		geo := make(orb.LineString, len(raw))
		for i, c := range raw {
			geo[i] = orb.Point{c[0], c[1]}
		}
		line, err := projection.Apply(forward, geo)
		if err != nil {
			return nil, fmt.Errorf("gtfs: project shape %s: %w", shapeID, err)
		}
		trips := x.shapeTrips[shapeID]
		for _, half := range splitAtMidpoint(line) {
			out = append(out, Candidate{ShapeID: shapeID, Line: half, Trips: trips})
		}
	}
	return out, nil
}

// splitAtMidpoint bisects a line at its middle coordinate index. The
// halves share the midpoint coordinate. Lines too short to yield two
// real halves are returned whole.
func splitAtMidpoint(line orb.LineString) []orb.LineString {
	if len(line) < 3 {
		return []orb.LineString{line}
	}
	mid := len(line) / 2
	return []orb.LineString{line[:mid+1], line[mid:]}
}
