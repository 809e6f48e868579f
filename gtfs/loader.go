package gtfs

import (
	"fmt"
	"sort"

	"github.com/patrickbr/gtfsparser"
)

// Load parses a GTFS feed (directory or zip) and counts, for every
// shape, the trips running under one of the given service calendar ids.
// An empty calendar list counts every trip. Shapes with no counted
// trips or fewer than two points never enter the index.
func Load(path string, calendars []string) (*Index, error) {
	feed := gtfsparser.NewFeed()
	if err := feed.Parse(path); err != nil {
		return nil, fmt.Errorf("gtfs: parse %s: %w", path, err)
	}
	return buildIndex(feed, calendars), nil
}

func buildIndex(feed *gtfsparser.Feed, calendars []string) *Index {
	selected := make(map[string]bool, len(calendars))
	for _, c := range calendars {
		selected[c] = true
	}

	x := newIndex()
	for _, t := range feed.Trips {
		if t.Shape == nil || t.Route == nil {
			continue
		}
		if len(selected) > 0 && (t.Service == nil || !selected[t.Service.Id()]) {
			continue
		}
		x.shapeTrips[t.Shape.Id]++
		x.shapeRoute[t.Shape.Id] = t.Route.Id
		x.routeShort[t.Route.Id] = t.Route.Short_name
	}

	for id, shape := range feed.Shapes {
		if x.shapeTrips[id] == 0 {
			continue
		}
		pts := shape.Points
		sort.Slice(pts, func(i, j int) bool { return pts[i].Sequence < pts[j].Sequence })
		line := make([][2]float64, 0, len(pts))
		for _, p := range pts {
			line = append(line, [2]float64{float64(p.Lon), float64(p.Lat)})
		}
		if len(line) < 2 {
			delete(x.shapeTrips, id)
			continue
		}
		routeID := x.shapeRoute[id]
		x.shapeLine[id] = line
		x.routes[routeID] = append(x.routes[routeID], id)
	}

	// Stable shape order per route keeps the greedy reconciliation
	// deterministic run to run.
	for _, ids := range x.routes {
		sort.Strings(ids)
	}
	return x
}
