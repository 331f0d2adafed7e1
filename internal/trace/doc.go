// Package trace captures execution traces of pipeline runs.
//
// Every stage execution produces one Event holding the stage identity,
// the worker that ran it, and start/end offsets relative to the run's
// shared t0. Events are written into a pre-allocated log addressed by a
// pure function of (item, stage), so concurrent writers never touch the
// same slot and no locking is needed on the hot path.
//
// The completed log is read-only input for sorting, statistics, and
// rendering.
package trace
