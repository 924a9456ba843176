package runner

import (
	"github.com/botkeeper/botkeeper/internal/model"
)

// Event is one item in the ordered progress stream of a batch run.
// The concrete types are InstanceStarted, InstanceFinished and BatchComplete.
type Event interface {
	isEvent()
}

// InstanceStarted is emitted immediately before an instance is processed.
type InstanceStarted struct {
	Path  string
	Index int // 1-based
	Total int
}

// InstanceFinished carries the outcome of one processed instance.
type InstanceFinished struct {
	Outcome model.OperationOutcome
}

// BatchComplete terminates the stream; it is emitted exactly once, even when
// the run was cancelled partway through.
type BatchComplete struct {
	Summary model.RunSummary
}

func (InstanceStarted) isEvent()  {}
func (InstanceFinished) isEvent() {}
func (BatchComplete) isEvent()    {}
