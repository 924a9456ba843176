package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/botkeeper/botkeeper/internal/config"
	"github.com/botkeeper/botkeeper/internal/logger"
	"github.com/botkeeper/botkeeper/internal/model"
	botkeepererrors "github.com/botkeeper/botkeeper/pkg/errors"
)

// Engine applies the fixed maintenance sequence to a single instance. It is
// synchronous and knows nothing about batching or presentation; the runner
// owns ordering across instances and cancellation.
type Engine struct {
	log *logger.Logger
}

// New creates an Engine. The logger may be nil.
func New(log *logger.Logger) *Engine {
	return &Engine{log: log}
}

type stepFunc func(inst model.Instance, cfg *config.Config) (int, string, error)

type stepSpec struct {
	name       string
	updateOnly bool
	run        stepFunc
}

func (e *Engine) steps() []stepSpec {
	return []stepSpec{
		{name: model.StepDeleteLogs, run: e.deleteLogs},
		{name: model.StepPurgeOldPlugins, run: e.purgeOldPlugins},
		{name: model.StepClearUpdates, run: e.clearUpdates},
		{name: model.StepDistributeCore, updateOnly: true, run: e.distributeCore},
		{name: model.StepDistributePlugins, updateOnly: true, run: e.distributePlugins},
	}
}

// Process runs the five-step sequence against one instance. Every applicable
// step is attempted even after an earlier step fails; the first failure is
// pinned on the outcome. The single fatal condition is the instance root
// itself being missing or not a directory, which skips all steps.
func (e *Engine) Process(inst model.Instance, mode model.Mode, cfg *config.Config) model.OperationOutcome {
	outcome := model.OperationOutcome{InstancePath: inst.Path}

	info, err := os.Stat(inst.Path)
	if err != nil || !info.IsDir() {
		outcome.Unreachable = true
		outcome.FirstError = botkeepererrors.NewInstanceUnreachableError(inst.Path, err)
		e.log.WithFields(map[string]any{"instance": inst.Path}).
			Error(outcome.FirstError, "instance unreachable, skipping all steps")
		return outcome
	}

	for _, spec := range e.steps() {
		if spec.updateOnly && mode == model.ModeCleanOnly {
			outcome.RecordStep(model.StepResult{
				Step:    spec.name,
				Status:  model.StatusSkipped,
				Message: "skipped in clean-only mode",
			})
			continue
		}
		outcome.RecordStep(e.runStep(inst, cfg, spec))
	}

	return outcome
}

func (e *Engine) runStep(inst model.Instance, cfg *config.Config, spec stepSpec) model.StepResult {
	log := e.log.WithFields(map[string]any{"instance": inst.Path, "step": spec.name})

	start := time.Now()
	affected, message, err := spec.run(inst, cfg)
	duration := time.Since(start)

	if err != nil {
		stepErr := botkeepererrors.NewStepError(inst.Path, spec.name, err)
		log.Error(stepErr, "step failed")
		return model.StepResult{
			Step:     spec.name,
			Status:   model.StatusFailed,
			Message:  err.Error(),
			Error:    stepErr,
			Affected: affected,
			Duration: duration,
		}
	}

	log.Debug(fmt.Sprintf("step complete: %s", message))
	return model.StepResult{
		Step:     spec.name,
		Status:   model.StatusSuccess,
		Message:  message,
		Affected: affected,
		Duration: duration,
	}
}
