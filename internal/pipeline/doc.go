// Package pipeline runs dependency-tracked three-stage pipelines over a
// bounded worker pool.
//
// Every item flows through three stages:
//
//	A (produce) -> B (transform) -> C (consume)
//
// Ordering within an item is enforced purely through dependency handles:
// each stage-task waits on the completion handles of its inputs before it
// may occupy a worker. There are no barriers between stages or between
// items, so stages of different items overlap freely - that overlap is
// exactly what the trace is meant to make visible.
//
// The executor does not re-implement a work stealer. A stage-task that is
// not yet eligible holds no worker slot; once its dependencies complete
// it contends for a slot like any other ready task, and the Go scheduler
// does the actual balancing.
package pipeline
