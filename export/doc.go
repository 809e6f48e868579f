// Package export serializes reconciled route partitions as GeoJSON
// feature collections, one file per route plus a combined overview, and
// assigns each route a distinct display color.
//
// This package is organized into:
// - geojson.go: simplification, reprojection and feature serialization
// - palette.go: sequential distinct-color generation
package export
