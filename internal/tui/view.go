package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/botkeeper/botkeeper/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("botkeeper • %s", m.title)))

	progress := components.NewProgress(m.total).View(m.completed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	if len(m.order) > 0 {
		sections = append(sections, sectionStyle.Render("Instances"), m.renderRows())
	}

	summary := components.NewSummary(m.summary, m.cancelled).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRows() string {
	var lines []string
	for _, path := range m.order {
		row := m.rows[path]
		line := fmt.Sprintf(" %s %s", stateIcon(row.state), path)
		if row.outcome != nil && row.outcome.FirstError != nil {
			line = fmt.Sprintf("%s — %s", line, row.outcome.FirstError.Error())
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func stateIcon(state string) string {
	switch state {
	case stateSuccess:
		return successStyle.Render("✓")
	case statePartial:
		return partialStyle.Render("!")
	case stateUnreachable:
		return failureStyle.Render("✗")
	case stateRunning:
		return runningStyle.Render("⏳")
	default:
		return pendingStyle.Render("…")
	}
}
