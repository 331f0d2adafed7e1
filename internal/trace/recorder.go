package trace

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidItems is returned when a recorder is sized for a non-positive
// item count.
var ErrInvalidItems = errors.New("item count must be positive")

// SlotIndex maps (item, stage) to the event's position in the log.
// Each stage execution owns exactly one slot, so writers are disjoint.
func SlotIndex(item int, stage Stage) int {
	return StageCount*item + stage.Index()
}

// Recorder collects one Event per stage execution into a fixed-size log.
// Slots are pre-allocated; Begin and Finish for a given (item, stage) are
// called by the single worker executing that stage, so no synchronization
// is used.
type Recorder struct {
	items  int
	events []Event
}

// NewRecorder allocates an event log for items pipeline instances.
func NewRecorder(items int) (*Recorder, error) {
	if items <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidItems, items)
	}
	return &Recorder{
		items:  items,
		events: make([]Event, StageCount*items),
	}, nil
}

// Items returns the number of pipeline instances the log covers.
func (r *Recorder) Items() int {
	return r.items
}

// Begin stamps the start of a stage execution into its slot.
func (r *Recorder) Begin(item int, stage Stage, worker int, start time.Duration) {
	e := &r.events[SlotIndex(item, stage)]
	e.Item = item
	e.Stage = stage
	e.Worker = worker
	e.Start = start
}

// Finish stamps the end of a stage execution into its slot.
func (r *Recorder) Finish(item int, stage Stage, end time.Duration) {
	r.events[SlotIndex(item, stage)].End = end
}

// Events returns a copy of the log. Callers may sort or mutate the copy
// freely without affecting the recorder.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// SortForDisplay orders events by (start, item, stage) ascending. The
// tie-break makes display order deterministic even though execution
// interleaving is not.
func SortForDisplay(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Item != b.Item {
			return a.Item < b.Item
		}
		return a.Stage.Index() < b.Stage.Index()
	})
}

// MaxWorker returns the highest worker id observed in the log, or -1 for
// an empty log.
func MaxWorker(events []Event) int {
	max := -1
	for _, e := range events {
		if e.Worker > max {
			max = e.Worker
		}
	}
	return max
}
