package runner

import (
	"context"
	"fmt"

	"github.com/botkeeper/botkeeper/internal/config"
	"github.com/botkeeper/botkeeper/internal/engine"
	"github.com/botkeeper/botkeeper/internal/logger"
	"github.com/botkeeper/botkeeper/internal/model"
)

// Runner executes a batch of instances strictly sequentially on a single
// background goroutine, emitting an ordered event stream. Sequential
// processing keeps index/total reporting exact and avoids concurrent writers
// in the shared plugin source.
type Runner struct {
	engine *engine.Engine
	log    *logger.Logger
}

// New creates a Runner around the given engine. The logger may be nil.
func New(eng *engine.Engine, log *logger.Logger) *Runner {
	return &Runner{engine: eng, log: log}
}

// Run starts the batch on its own goroutine and returns the event channel.
// For each instance the stream carries InstanceStarted then InstanceFinished;
// the stream always ends with BatchComplete, after which the channel is
// closed. The channel is unbuffered, so the batch advances only as fast as
// the caller consumes events; callers must drain the channel.
//
// The configuration is snapshotted at call time: mutations made while the
// run is in flight apply to the next run only. Cancellation via ctx is
// cooperative and observed between instances, never mid-instance. A cancel
// that arrives while a start event is in flight may leave that trailing
// InstanceStarted without a matching InstanceFinished; the skipped instance
// stays counted in the summary's Remaining.
func (r *Runner) Run(ctx context.Context, instances []model.Instance, mode model.Mode, cfg *config.Config) <-chan Event {
	snapshot := *cfg
	events := make(chan Event)

	go func() {
		defer close(events)

		summary := model.RunSummary{
			Total:     len(instances),
			Remaining: len(instances),
		}

	loop:
		for i, inst := range instances {
			select {
			case <-ctx.Done():
				break loop
			case events <- InstanceStarted{Path: inst.Path, Index: i + 1, Total: len(instances)}:
			}

			// The consumer's receive of the start event happens before the
			// send above completes, so a cancel issued before that receive
			// is visible here. Without this re-check a cancel racing the
			// select could slip one extra instance into the run.
			if ctx.Err() != nil {
				break
			}

			r.log.WithFields(map[string]any{"instance": inst.Path}).
				Info(fmt.Sprintf("processing instance %d/%d", i+1, len(instances)))

			outcome := r.engine.Process(inst, mode, &snapshot)
			summary.Record(outcome)
			summary.Remaining--

			events <- InstanceFinished{Outcome: outcome}
		}

		if ctx.Err() != nil {
			r.log.Warn(fmt.Sprintf("run cancelled with %d of %d instances processed", summary.Processed, summary.Total))
		}

		events <- BatchComplete{Summary: summary}
	}()

	return events
}
