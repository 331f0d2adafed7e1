package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pipetrace/pipetrace/internal/infrastructure/logging"
	"github.com/pipetrace/pipetrace/internal/infrastructure/monitoring"
	"github.com/pipetrace/pipetrace/internal/shared/id"
	"github.com/pipetrace/pipetrace/internal/trace"
	"github.com/pipetrace/pipetrace/internal/work"
)

// stage work costs, in abstract units. Transform is deliberately the
// heaviest so overlap between items is visible in traces.
const (
	costProduce   = 2
	costTransform = 3
	costConsume   = 1
)

// Config describes one pipeline run.
type Config struct {
	// Items is the number of independent pipeline instances. Must be > 0.
	Items int

	// Workers sizes the worker pool; <= 0 selects runtime parallelism.
	Workers int

	// Work is the synthetic workload; nil selects work.Burn.
	Work work.Func

	// OnStage, when set, is called from the executing worker right after
	// each stage completes. Callers use it for live progress lines.
	OnStage func(trace.Event)

	// Logger receives diagnostics; nil selects a no-op logger.
	Logger *logging.Logger

	// Metrics, when set, records per-stage and per-run observations.
	Metrics *monitoring.Metrics
}

// Result is the completed run: the full event log plus run-level facts.
type Result struct {
	RunID   id.RunID
	Events  []trace.Event
	Total   time.Duration
	Workers int
}

// Run executes the dependency-tracked pipeline for cfg.Items items and
// returns the recorded trace. Every stage of every item executes exactly
// once; within an item the A -> B -> C order is enforced through
// dependency handles, across items no order is promised.
func Run(cfg Config) (*Result, error) {
	if cfg.Items <= 0 {
		return nil, fmt.Errorf("items must be > 0, got %d", cfg.Items)
	}

	burn := cfg.Work
	if burn == nil {
		burn = work.Burn
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	recorder, err := trace.NewRecorder(cfg.Items)
	if err != nil {
		return nil, fmt.Errorf("event log allocation: %w", err)
	}

	// Dependency tokens. Their values are incidental payload; the handles
	// returned by Submit carry the actual dependency edges.
	tokenA := make([]int, cfg.Items)
	tokenB := make([]int, cfg.Items)

	exec := NewExecutor(cfg.Workers)
	runID := id.NewRunID()

	logger.Debug("submitting pipeline",
		zap.String("run_id", runID.String()),
		zap.Int("items", cfg.Items),
		zap.Int("workers", exec.Workers()),
	)

	// t0 is captured once and passed into every stage closure; offsets in
	// the trace are relative to it.
	t0 := time.Now()

	for i := 0; i < cfg.Items; i++ {
		item := i

		produce, err := exec.Submit(nil, func(worker int) {
			runStage(recorder, cfg, burn, t0, item, trace.StageProduce, worker, costProduce, func() {
				tokenA[item] = item
			})
		})
		if err != nil {
			return nil, fmt.Errorf("submit produce %d: %w", item, err)
		}

		transform, err := exec.Submit([]Done{produce}, func(worker int) {
			runStage(recorder, cfg, burn, t0, item, trace.StageTransform, worker, costTransform, func() {
				tokenB[item] = tokenA[item] * 2
			})
		})
		if err != nil {
			return nil, fmt.Errorf("submit transform %d: %w", item, err)
		}

		_, err = exec.Submit([]Done{transform}, func(worker int) {
			runStage(recorder, cfg, burn, t0, item, trace.StageConsume, worker, costConsume, func() {
				_ = tokenB[item]
			})
		})
		if err != nil {
			return nil, fmt.Errorf("submit consume %d: %w", item, err)
		}
	}

	exec.Wait()
	total := time.Since(t0)

	if cfg.Metrics != nil {
		cfg.Metrics.RecordRun(total)
	}
	logger.Debug("pipeline complete",
		zap.String("run_id", runID.String()),
		zap.Duration("total", total),
	)

	return &Result{
		RunID:   runID,
		Events:  recorder.Events(),
		Total:   total,
		Workers: exec.Workers(),
	}, nil
}

// runStage executes one stage body with trace instrumentation. Start is
// sampled before the synthetic work, end immediately after the token
// write; the recorder slot is owned exclusively by this worker.
func runStage(rec *trace.Recorder, cfg Config, burn work.Func, t0 time.Time, item int, stage trace.Stage, worker, cost int, body func()) {
	start := time.Since(t0)
	rec.Begin(item, stage, worker, start)

	burn(cost)
	body()

	end := time.Since(t0)
	rec.Finish(item, stage, end)

	if cfg.Metrics != nil {
		cfg.Metrics.RecordStage(string(stage.Tag()), end-start)
	}
	if cfg.OnStage != nil {
		cfg.OnStage(trace.Event{
			Item:   item,
			Stage:  stage,
			Worker: worker,
			Start:  start,
			End:    end,
		})
	}
}
