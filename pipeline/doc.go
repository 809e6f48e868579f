// Package pipeline wires the stages together: GTFS ingestion, per-route
// candidate construction, parallel reconciliation and GeoJSON export.
//
// Routes are independent, so reconciliation fans out over a bounded
// worker pool with one geometry context per worker; within a route the
// work is strictly sequential. A route that fails is logged and
// skipped, never aborting the rest of the run.
package pipeline
