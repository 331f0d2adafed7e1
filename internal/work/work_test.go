package work

import (
	"math"
	"sync"
	"testing"
)

func TestBurn(t *testing.T) {
	// Zero cost is a no-op; positive cost must complete and keep the
	// accumulator observable.
	Burn(0)
	Burn(1)
	if math.Float64frombits(sink.Load()) <= 0 {
		t.Errorf("expected positive accumulator after Burn(1), got %v",
			math.Float64frombits(sink.Load()))
	}
}

func TestBurnConcurrent(t *testing.T) {
	// Burn runs on every worker at once during a pipeline run; the
	// accumulator sink must tolerate that (run with -race).
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Burn(1)
		}()
	}
	wg.Wait()

	if math.Float64frombits(sink.Load()) <= 0 {
		t.Errorf("expected positive accumulator after concurrent burns, got %v",
			math.Float64frombits(sink.Load()))
	}
}

func BenchmarkBurnUnit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Burn(1)
	}
}
