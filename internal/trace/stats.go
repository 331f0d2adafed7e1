package trace

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// StageStats summarizes the observed durations of one stage across all
// items.
type StageStats struct {
	Stage  Stage
	Count  int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
}

// Summarize computes per-stage duration statistics over a completed log.
// The result always has one entry per stage, in stage order; a stage with
// no events has zero statistics.
func Summarize(events []Event) []StageStats {
	byStage := make([][]float64, StageCount)
	mins := make([]time.Duration, StageCount)
	maxs := make([]time.Duration, StageCount)

	for _, e := range events {
		idx := e.Stage.Index()
		d := e.Duration()
		if len(byStage[idx]) == 0 || d < mins[idx] {
			mins[idx] = d
		}
		if d > maxs[idx] {
			maxs[idx] = d
		}
		byStage[idx] = append(byStage[idx], d.Seconds())
	}

	out := make([]StageStats, StageCount)
	for s := 0; s < StageCount; s++ {
		out[s] = StageStats{Stage: Stage(s), Count: len(byStage[s])}
		if len(byStage[s]) == 0 {
			continue
		}
		out[s].Min = mins[s]
		out[s].Max = maxs[s]
		out[s].Mean = secondsToDuration(stat.Mean(byStage[s], nil))
		if len(byStage[s]) > 1 {
			out[s].StdDev = secondsToDuration(stat.StdDev(byStage[s], nil))
		}
	}
	return out
}

// WorkerLoads counts executed stages per worker id, indexed 0..MaxWorker.
// Returns nil for an empty log.
func WorkerLoads(events []Event) []int {
	max := MaxWorker(events)
	if max < 0 {
		return nil
	}
	loads := make([]int, max+1)
	for _, e := range events {
		if e.Worker >= 0 {
			loads[e.Worker]++
		}
	}
	return loads
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
