// Package monitoring collects Prometheus metrics for pipeline runs.
//
// Each run owns its own registry, so repeated in-process runs (tests,
// reused drivers) never collide on collector registration. Alongside the
// Prometheus collectors a plain snapshot is tracked for the optional
// end-of-run text footer.
package monitoring
