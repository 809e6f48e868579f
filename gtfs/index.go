package gtfs

import (
	"sort"
	"strconv"
)

// Index stores the schedule-weighted shape data of one feed in memory
// for fast lookups.
type Index struct {
	shapeLine  map[string][][2]float64 // shape_id -> ordered [lon,lat]
	shapeTrips map[string]uint32       // shape_id -> scheduled trips
	shapeRoute map[string]string       // shape_id -> route_id
	routeShort map[string]string       // route_id -> short name
	routes     map[string][]string     // route_id -> shape ids
}

func newIndex() *Index {
	return &Index{
		shapeLine:  map[string][][2]float64{},
		shapeTrips: map[string]uint32{},
		shapeRoute: map[string]string{},
		routeShort: map[string]string{},
		routes:     map[string][]string{},
	}
}

// RouteIDs returns every route with at least one counted shape, sorted
// numerically where ids parse as integers and lexically otherwise.
func (x *Index) RouteIDs() []string {
	ids := make([]string, 0, len(x.routes))
	for id := range x.routes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

// RouteShortName returns the route's short name, or the empty string.
func (x *Index) RouteShortName(routeID string) string {
	return x.routeShort[routeID]
}

// ShapeTrips returns the scheduled trip count of a shape.
func (x *Index) ShapeTrips(shapeID string) uint32 {
	return x.shapeTrips[shapeID]
}
