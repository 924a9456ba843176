package model

// Mode selects which maintenance steps run for a batch.
type Mode string

const (
	// ModeCleanOnly runs only the deletion and clearing steps.
	ModeCleanOnly Mode = "clean"
	// ModeCleanAndUpdate runs the full five-step sequence.
	ModeCleanAndUpdate Mode = "clean_and_update"
)

// Instance is one managed installation, identified by its directory path.
type Instance struct {
	Path string
	Name string
}

// OperationOutcome collects the per-step results for one instance in one run.
type OperationOutcome struct {
	InstancePath   string
	Steps          []StepResult
	StepsAttempted int
	StepsSucceeded int
	FirstError     error
	Unreachable    bool
}

// RecordStep appends a step result and updates the attempt counters.
// The first failing step pins FirstError; later failures are still recorded
// in Steps but do not replace it.
func (o *OperationOutcome) RecordStep(res StepResult) {
	o.Steps = append(o.Steps, res)
	if res.Status == StatusSkipped {
		return
	}
	o.StepsAttempted++
	if res.Status == StatusSuccess {
		o.StepsSucceeded++
	} else if o.FirstError == nil {
		o.FirstError = res.Error
	}
}

// Succeeded reports whether every attempted step completed without error.
func (o *OperationOutcome) Succeeded() bool {
	return !o.Unreachable && o.FirstError == nil
}

// RunSummary aggregates outcomes over one batch invocation.
type RunSummary struct {
	Total           int
	Processed       int
	Remaining       int
	Succeeded       int
	PartialFailures int
	Failures        int
}

// Record folds one instance outcome into the summary.
func (s *RunSummary) Record(outcome OperationOutcome) {
	s.Processed++
	switch {
	case outcome.Unreachable:
		s.Failures++
	case outcome.FirstError != nil:
		s.PartialFailures++
	default:
		s.Succeeded++
	}
}
