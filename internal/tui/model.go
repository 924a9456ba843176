package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/botkeeper/botkeeper/internal/model"
	"github.com/botkeeper/botkeeper/internal/runner"
)

// Per-instance display states.
const (
	stateRunning     = "running"
	stateSuccess     = "success"
	statePartial     = "partial"
	stateUnreachable = "unreachable"
)

// InstanceStartMsg indicates an instance has started processing.
type InstanceStartMsg struct {
	Event runner.InstanceStarted
}

// InstanceDoneMsg reports that an instance has finished processing.
type InstanceDoneMsg struct {
	Event runner.InstanceFinished
}

// BatchDoneMsg terminates the display with the final summary.
type BatchDoneMsg struct {
	Event runner.BatchComplete
}

type instanceRow struct {
	path    string
	state   string
	outcome *model.OperationOutcome
}

// Model contains the Bubbletea state for a batch run display.
type Model struct {
	title     string
	total     int
	completed int
	order     []string
	rows      map[string]*instanceRow
	summary   *model.RunSummary
	cancel    func()
	cancelled bool
	finished  bool
}

// NewModel constructs a TUI model for a batch of the given size. cancel is
// invoked on Ctrl+C to request cooperative cancellation of the run; the
// display stays up until the runner emits its final summary.
func NewModel(title string, total int, cancel func()) Model {
	return Model{
		title:  title,
		total:  total,
		rows:   make(map[string]*instanceRow),
		cancel: cancel,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureRow(path string) *instanceRow {
	if row, ok := m.rows[path]; ok {
		return row
	}
	row := &instanceRow{path: path, state: stateRunning}
	m.rows[path] = row
	m.order = append(m.order, path)
	return row
}
