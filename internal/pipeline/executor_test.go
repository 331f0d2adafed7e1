package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 3, PoolSize(3))
	assert.Equal(t, runtime.GOMAXPROCS(0), PoolSize(0))
	assert.Equal(t, runtime.GOMAXPROCS(0), PoolSize(-1))
}

func TestExecutorDependencyOrdering(t *testing.T) {
	exec := NewExecutor(4)

	var mu sync.Mutex
	var order []string
	record := func(name string) {
		mu.Lock()
		order = append(order, name)
		mu.Unlock()
	}

	a, err := exec.Submit(nil, func(int) { record("a") })
	require.NoError(t, err)

	b, err := exec.Submit([]Done{a}, func(int) { record("b") })
	require.NoError(t, err)

	_, err = exec.Submit([]Done{b}, func(int) { record("c") })
	require.NoError(t, err)

	exec.Wait()

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestExecutorBoundsConcurrency(t *testing.T) {
	const workers = 2
	const tasks = 16

	exec := NewExecutor(workers)

	var current, peak int64
	for i := 0; i < tasks; i++ {
		_, err := exec.Submit(nil, func(worker int) {
			assert.GreaterOrEqual(t, worker, 0)
			assert.Less(t, worker, workers)

			n := atomic.AddInt64(&current, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			atomic.AddInt64(&current, -1)
		})
		require.NoError(t, err)
	}
	exec.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(workers))
}

func TestExecutorDistinctSlots(t *testing.T) {
	// Two tasks that overlap in time must hold different slots.
	exec := NewExecutor(2)

	started := make(chan struct{})
	gate := make(chan struct{})
	var slots [2]int

	first, err := exec.Submit(nil, func(worker int) {
		slots[0] = worker
		close(started)
		<-gate
	})
	require.NoError(t, err)

	_, err = exec.Submit(nil, func(worker int) {
		<-started
		slots[1] = worker
		close(gate)
	})
	require.NoError(t, err)

	<-first
	exec.Wait()

	assert.NotEqual(t, slots[0], slots[1])
}

func TestExecutorSubmitAfterWait(t *testing.T) {
	exec := NewExecutor(1)
	_, err := exec.Submit(nil, func(int) {})
	require.NoError(t, err)
	exec.Wait()

	_, err = exec.Submit(nil, func(int) {})
	require.ErrorIs(t, err, ErrClosed)
}

func TestExecutorDoneHandleCloses(t *testing.T) {
	exec := NewExecutor(1)
	done, err := exec.Submit(nil, func(int) {})
	require.NoError(t, err)

	<-done // must not hang
	exec.Wait()
}
