// Package frequency resolves a set of possibly-overlapping route
// geometries, each annotated with a scheduled trip count, into a
// disjoint partition of segments of constant frequency.
//
// The unit of work is the Segment: a connected projected polyline plus
// the number of trips traversing it. A Reconciler repeatedly merges
// pairs of overlapping segments (summing their counts over the shared
// portion and carving out the non-shared remainders) until every
// segment is disjoint from every other, then coalesces equal-count
// segments back into maximal connected lines.
//
// Intersection tests are tolerant: one side is dilated by the
// reconciler's buffer tolerance so that independently digitized shapes
// following the same street still register as overlapping. Fragments at
// or below the minimum length tolerance are treated as numerical noise
// and never survive an operation.
package frequency
