package pipeline

import (
	"errors"
	"runtime"
	"sync"
)

var (
	// ErrClosed is returned when submitting to an executor after Wait.
	ErrClosed = errors.New("executor is closed")
)

// Done is a dependency handle: it is closed when the task that produced
// it has completed. A stage-task lists the handles of its inputs.
type Done <-chan struct{}

// Executor runs submitted tasks on a fixed pool of worker slots. A task
// whose dependencies are unmet does not occupy a slot; it waits on its
// handles first and only then contends for a worker.
type Executor struct {
	slots chan int

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// PoolSize resolves a requested worker count: non-positive selects the
// runtime's available parallelism.
func PoolSize(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// NewExecutor creates an executor with the given number of worker slots.
// workers <= 0 selects the runtime's available parallelism.
func NewExecutor(workers int) *Executor {
	workers = PoolSize(workers)
	slots := make(chan int, workers)
	for i := 0; i < workers; i++ {
		slots <- i
	}
	return &Executor{slots: slots}
}

// Workers returns the pool size. Observed worker ids are in [0, Workers).
func (e *Executor) Workers() int {
	return cap(e.slots)
}

// Submit schedules fn to run once every handle in deps is closed. fn
// receives the id of the worker slot it runs on. The returned handle is
// closed when fn returns.
func (e *Executor) Submit(deps []Done, fn func(worker int)) (Done, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, ErrClosed
	}
	e.wg.Add(1)
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer e.wg.Done()
		defer close(done)

		for _, d := range deps {
			<-d
		}

		slot := <-e.slots
		defer func() { e.slots <- slot }()
		fn(slot)
	}()
	return done, nil
}

// Wait blocks until every submitted task has completed. The executor
// accepts no further submissions afterward.
func (e *Executor) Wait() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.wg.Wait()
}
