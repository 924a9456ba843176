package model

import (
	"time"
)

const (
	// StatusSuccess marks a step that completed without error.
	StatusSuccess = "success"
	// StatusFailed marks a step that hit an I/O failure.
	StatusFailed = "failed"
	// StatusSkipped marks a step not applicable to the current mode, or
	// skipped because the instance became unreachable.
	StatusSkipped = "skipped"
)

// Step names, in execution order.
const (
	StepDeleteLogs        = "delete_logs"
	StepPurgeOldPlugins   = "purge_old_plugins"
	StepClearUpdates      = "clear_updates"
	StepDistributeCore    = "distribute_core"
	StepDistributePlugins = "distribute_plugins"
)

// StepOrder lists the maintenance steps in the order the engine runs them.
var StepOrder = []string{
	StepDeleteLogs,
	StepPurgeOldPlugins,
	StepClearUpdates,
	StepDistributeCore,
	StepDistributePlugins,
}

// StepResult captures the outcome of one maintenance step on one instance.
type StepResult struct {
	Step     string
	Status   string
	Message  string
	Error    error
	Affected int
	Duration time.Duration
}
