package trace

import "time"

// Stage identifies one of the three pipeline stages applied to an item.
type Stage uint8

const (
	StageProduce Stage = iota
	StageTransform
	StageConsume

	// StageCount is the number of stages per pipeline item.
	StageCount = 3
)

// Tag returns the single-character stage tag used in timelines.
func (s Stage) Tag() byte {
	switch s {
	case StageProduce:
		return 'A'
	case StageTransform:
		return 'B'
	default:
		return 'C'
	}
}

// Index returns the stage's position within an item's slot group.
func (s Stage) Index() int {
	return int(s)
}

func (s Stage) String() string {
	switch s {
	case StageProduce:
		return "A (produce)"
	case StageTransform:
		return "B (transform)"
	default:
		return "C (consume)"
	}
}

// Event is one recorded stage execution. Start and End are offsets from
// the run's t0. An Event is written exactly once and read-only afterward.
type Event struct {
	Item   int
	Stage  Stage
	Worker int
	Start  time.Duration
	End    time.Duration
}

// Duration returns the elapsed time of the stage execution.
func (e Event) Duration() time.Duration {
	return e.End - e.Start
}
