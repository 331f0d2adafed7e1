package monitoring

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordStage("A", 10*time.Millisecond)
	m.RecordStage("B", 20*time.Millisecond)
	m.RecordStage("A", 30*time.Millisecond)
	m.RecordRun(100 * time.Millisecond)

	snap := m.GetSnapshot()
	assert.Equal(t, int64(3), snap.StagesExecuted)
	assert.Equal(t, int64(1), snap.RunsCompleted)
	assert.InDelta(t, 0.06, snap.StageSeconds, 1e-9)
}

func TestMetricsRegistryIsolation(t *testing.T) {
	// Two collectors must not collide on registration.
	a := NewMetrics()
	b := NewMetrics()

	a.RecordStage("A", time.Millisecond)
	b.RecordStage("A", time.Millisecond)

	families, err := a.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["pipetrace_stages_total"])
	assert.True(t, names["pipetrace_stage_duration_seconds"])
}

func TestWriteFooter(t *testing.T) {
	m := NewMetrics()
	m.RecordStage("C", 5*time.Millisecond)
	m.RecordRun(5 * time.Millisecond)

	var buf bytes.Buffer
	m.WriteFooter(&buf)
	out := buf.String()

	assert.Contains(t, out, "Metrics:")
	assert.Contains(t, out, "stages executed : 1")
	assert.Contains(t, out, "runs completed  : 1")
}
