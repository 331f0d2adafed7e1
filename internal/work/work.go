// Package work provides the synthetic CPU-bound workload that makes
// pipeline concurrency visible in traces.
package work

import (
	"math"
	"sync/atomic"
)

// Func is an injectable workload strategy. cost is an abstract work
// amount; higher cost must take proportionally longer. Tests substitute a
// fast deterministic stand-in.
type Func func(cost int)

// iterations per unit of cost, sized so a single unit is measurable on
// current hardware without dominating a demo run.
const unitIterations = 120000

// sink defeats dead-code elimination of the burn loop. Burn runs on every
// worker concurrently, so the store must be atomic.
var sink atomic.Uint64

// Burn runs a deterministic busy loop proportional to cost. It carries no
// semantic meaning beyond taking repeatable, measurable time.
func Burn(cost int) {
	acc := 0.0
	for i := 0; i < cost*unitIterations; i++ {
		acc += float64(i) * 1e-7
	}
	sink.Store(math.Float64bits(acc))
}
