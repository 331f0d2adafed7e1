// Package id provides typed run identifiers.
//
// A RunID correlates all log lines and reports of one pipeline run. The
// prefix keeps ids recognizable when they show up in mixed logs.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RunID identifies one pipeline run.
type RunID string

const runPrefix = "run"

// NewRunID generates a prefixed unique run identifier.
func NewRunID() RunID {
	return RunID(fmt.Sprintf("%s_%s", runPrefix, uuid.NewString()))
}

func (r RunID) String() string {
	return string(r)
}

// Valid reports whether the id carries the expected prefix.
func (r RunID) Valid() bool {
	return strings.HasPrefix(string(r), runPrefix+"_") && len(r) > len(runPrefix)+1
}
