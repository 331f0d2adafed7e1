package render

import (
	"fmt"
	"io"

	"github.com/pipetrace/pipetrace/internal/trace"
)

// WriteEventTable writes the full event log as a table. Callers sort the
// events with trace.SortForDisplay first; the table prints in slice
// order.
func WriteEventTable(w io.Writer, events []trace.Event) {
	fmt.Fprintf(w, "Event log (sorted by start time):\n")
	fmt.Fprintf(w, "Start    End      Dur      Wkr  Item  Stage\n")
	fmt.Fprintf(w, "-------- -------- -------- ---- ----- ----------------\n")

	for _, e := range events {
		fmt.Fprintf(w, "%8.4f %8.4f %8.4f %4d %5d %s\n",
			e.Start.Seconds(),
			e.End.Seconds(),
			e.Duration().Seconds(),
			e.Worker,
			e.Item,
			e.Stage,
		)
	}
	fmt.Fprintf(w, "\n")
}

// WriteItemSummary writes per-item stage completion times, one row per
// item. It shows that A precedes B precedes C within each item without
// printing the full log.
func WriteItemSummary(w io.Writer, events []trace.Event, items int) {
	fmt.Fprintf(w, "Summary (per item):\n")
	fmt.Fprintf(w, "Item | A_end    | B_end    | C_end\n")
	fmt.Fprintf(w, "-----+----------+----------+----------\n")

	for i := 0; i < items; i++ {
		var aEnd, bEnd, cEnd float64
		for _, e := range events {
			if e.Item != i {
				continue
			}
			switch e.Stage {
			case trace.StageProduce:
				aEnd = e.End.Seconds()
			case trace.StageTransform:
				bEnd = e.End.Seconds()
			case trace.StageConsume:
				cEnd = e.End.Seconds()
			}
		}
		fmt.Fprintf(w, "%4d | %8.4f | %8.4f | %8.4f\n", i, aEnd, bEnd, cEnd)
	}
	fmt.Fprintf(w, "\n")
}

// WriteStageStats writes per-stage duration statistics computed from the
// log.
func WriteStageStats(w io.Writer, stats []trace.StageStats) {
	fmt.Fprintf(w, "Stage duration statistics:\n")
	fmt.Fprintf(w, "Stage            Count  Min      Mean     Max      StdDev\n")
	fmt.Fprintf(w, "---------------- ------ -------- -------- -------- --------\n")

	for _, s := range stats {
		fmt.Fprintf(w, "%-16s %6d %8.4f %8.4f %8.4f %8.4f\n",
			s.Stage,
			s.Count,
			s.Min.Seconds(),
			s.Mean.Seconds(),
			s.Max.Seconds(),
			s.StdDev.Seconds(),
		)
	}
	fmt.Fprintf(w, "\n")
}

// WriteWorkerLoads writes how many stages each worker executed.
func WriteWorkerLoads(w io.Writer, loads []int) {
	fmt.Fprintf(w, "Stages executed per worker:\n")
	for wid, n := range loads {
		fmt.Fprintf(w, "  W%02d: %d\n", wid, n)
	}
	fmt.Fprintf(w, "\n")
}
