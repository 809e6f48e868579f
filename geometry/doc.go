// Package geometry is a thin adapter over the GEOS library for the
// planar line operations the frequency core needs: construction,
// length, buffering, intersection, difference and line-merging.
//
// All coordinates crossing the package boundary are orb.LineString
// values in a projected (locally Euclidean) coordinate system; lengths
// and buffer distances are therefore in the projection's linear unit.
//
// A Context owns the underlying GEOS handle. Contexts are cheap to
// create and each reconciliation job should use its own rather than
// sharing one across goroutines.
package geometry
