// Package gtfs loads a static GTFS feed and turns it into per-route
// reconciliation inputs: for every route, the shapes serving it under
// the selected service calendars, each annotated with its scheduled
// trip count.
//
// Shapes are kept in geographic WGS84 coordinates here; projection into
// a planar system and the midpoint split happen when candidates are
// built, so the index itself stays projection-agnostic.
package gtfs
