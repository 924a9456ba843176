package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordStepPinsFirstError(t *testing.T) {
	t.Parallel()

	first := errors.New("first failure")
	second := errors.New("second failure")

	outcome := OperationOutcome{InstancePath: "/bots/alpha"}
	outcome.RecordStep(StepResult{Step: StepDeleteLogs, Status: StatusSuccess})
	outcome.RecordStep(StepResult{Step: StepPurgeOldPlugins, Status: StatusFailed, Error: first})
	outcome.RecordStep(StepResult{Step: StepClearUpdates, Status: StatusFailed, Error: second})

	require.Equal(t, 3, outcome.StepsAttempted)
	require.Equal(t, 1, outcome.StepsSucceeded)
	require.Same(t, first, outcome.FirstError)
	require.False(t, outcome.Succeeded())
}

func TestRecordStepIgnoresSkipped(t *testing.T) {
	t.Parallel()

	outcome := OperationOutcome{InstancePath: "/bots/alpha"}
	outcome.RecordStep(StepResult{Step: StepDistributeCore, Status: StatusSkipped})

	require.Zero(t, outcome.StepsAttempted)
	require.Empty(t, outcome.FirstError)
	require.True(t, outcome.Succeeded())
}

func TestRunSummaryClassifiesOutcomes(t *testing.T) {
	t.Parallel()

	summary := RunSummary{Total: 3, Remaining: 3}

	clean := OperationOutcome{InstancePath: "/bots/a"}
	clean.RecordStep(StepResult{Step: StepDeleteLogs, Status: StatusSuccess})

	partial := OperationOutcome{InstancePath: "/bots/b"}
	partial.RecordStep(StepResult{Step: StepDeleteLogs, Status: StatusFailed, Error: errors.New("denied")})

	unreachable := OperationOutcome{InstancePath: "/bots/c", Unreachable: true}

	for _, o := range []OperationOutcome{clean, partial, unreachable} {
		summary.Record(o)
		summary.Remaining--
	}

	require.Equal(t, 3, summary.Processed)
	require.Equal(t, 0, summary.Remaining)
	require.Equal(t, 1, summary.Succeeded)
	require.Equal(t, 1, summary.PartialFailures)
	require.Equal(t, 1, summary.Failures)
}

func TestStepOrderMatchesSequence(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		StepDeleteLogs,
		StepPurgeOldPlugins,
		StepClearUpdates,
		StepDistributeCore,
		StepDistributePlugins,
	}, StepOrder)
}
