package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InstanceStartMsg:
		row := m.ensureRow(msg.Event.Path)
		row.state = stateRunning
		return m, nil
	case InstanceDoneMsg:
		outcome := msg.Event.Outcome
		row := m.ensureRow(outcome.InstancePath)
		row.outcome = &outcome
		switch {
		case outcome.Unreachable:
			row.state = stateUnreachable
		case outcome.FirstError != nil:
			row.state = statePartial
		default:
			row.state = stateSuccess
		}
		m.completed++
		return m, nil
	case BatchDoneMsg:
		summary := msg.Event.Summary
		m.summary = &summary
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
	}

	return m, nil
}
