// Package cli parses and validates the demos' positional arguments.
//
// Every binary takes 0-3 bare integers, each with a default when absent.
// Validation failures carry the reason; the binaries print it together
// with their usage line on stderr and exit non-zero before doing any
// work.
package cli

import (
	"fmt"
	"strconv"

	"github.com/pipetrace/pipetrace/internal/render"
)

// Usage lines, printed on stderr after a validation failure.
const (
	DependUsage  = "Usage: pipeline-depend [items]"
	OverlapUsage = "Usage: pipeline-overlap [items] [verbosity]"
	GanttUsage   = "Usage: pipeline-gantt [items] [width] [print_events]"
)

// Defaults for absent positional arguments.
const (
	DefaultItems       = 8
	DefaultWidth       = 80
	DefaultVerbosity   = 1
	DefaultPrintEvents = 0
)

// DependArgs are the pipeline-depend arguments.
type DependArgs struct {
	Items int
}

// OverlapArgs are the pipeline-overlap arguments.
type OverlapArgs struct {
	Items     int
	Verbosity int
}

// GanttArgs are the pipeline-gantt arguments.
type GanttArgs struct {
	Items       int
	Width       int
	PrintEvents int
}

// intArg parses args[index] as an integer, or returns def when absent.
func intArg(args []string, index, def int) (int, error) {
	if index >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[index])
	if err != nil {
		return 0, fmt.Errorf("invalid integer value at position %d: %q", index+1, args[index])
	}
	return v, nil
}

// ParseDepend parses and validates pipeline-depend arguments.
func ParseDepend(args []string) (DependArgs, error) {
	items, err := intArg(args, 0, DefaultItems)
	if err != nil {
		return DependArgs{}, err
	}
	if items <= 0 {
		return DependArgs{}, fmt.Errorf("items must be > 0, got %d", items)
	}
	return DependArgs{Items: items}, nil
}

// ParseOverlap parses and validates pipeline-overlap arguments.
func ParseOverlap(args []string) (OverlapArgs, error) {
	items, err := intArg(args, 0, DefaultItems)
	if err != nil {
		return OverlapArgs{}, err
	}
	verbosity, err := intArg(args, 1, DefaultVerbosity)
	if err != nil {
		return OverlapArgs{}, err
	}
	if items <= 0 {
		return OverlapArgs{}, fmt.Errorf("items must be > 0, got %d", items)
	}
	if verbosity != 0 && verbosity != 1 {
		return OverlapArgs{}, fmt.Errorf("verbosity must be 0 or 1, got %d", verbosity)
	}
	return OverlapArgs{Items: items, Verbosity: verbosity}, nil
}

// ParseGantt parses and validates pipeline-gantt arguments.
func ParseGantt(args []string) (GanttArgs, error) {
	items, err := intArg(args, 0, DefaultItems)
	if err != nil {
		return GanttArgs{}, err
	}
	width, err := intArg(args, 1, DefaultWidth)
	if err != nil {
		return GanttArgs{}, err
	}
	printEvents, err := intArg(args, 2, DefaultPrintEvents)
	if err != nil {
		return GanttArgs{}, err
	}
	if items <= 0 {
		return GanttArgs{}, fmt.Errorf("items must be > 0, got %d", items)
	}
	if width < render.MinWidth {
		return GanttArgs{}, fmt.Errorf("width must be >= %d for readable output, got %d", render.MinWidth, width)
	}
	if printEvents != 0 && printEvents != 1 {
		return GanttArgs{}, fmt.Errorf("print_events must be 0 or 1, got %d", printEvents)
	}
	return GanttArgs{Items: items, Width: width, PrintEvents: printEvents}, nil
}
