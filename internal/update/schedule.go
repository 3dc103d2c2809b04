package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fixyourlife/fixyourlife/internal/plan"
)

func (m Model) handleScheduleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.Session.ScheduleLen()-1 {
			m.Cursor++
		}
	case " ", "space":
		m = m.toggleAtCursor()
	case "enter":
		if err := m.Session.ToggleExpansion(m.Cursor); err != nil && !errors.Is(err, plan.ErrNoPlan) {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
	}
	return m
}

func (m Model) toggleAtCursor() Model {
	if err := m.Session.ToggleCompletion(m.Cursor); err != nil {
		if !errors.Is(err, plan.ErrNoPlan) {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m
	}
	item := m.Session.Schedule()[m.Cursor]
	if item.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("Task completed! %s", item.Task)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("Task marked incomplete: %s", item.Task)}
	}
	m.notify("Task", m.Status.Text, "info")
	return m
}

func (m *Model) clampCursor() {
	max := m.Session.ScheduleLen() - 1
	if max < 0 {
		max = 0
	}
	if m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) handleReportsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "w":
		m.ReportPeriod = PeriodWeek
	case "m":
		m.ReportPeriod = PeriodMonth
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		m.historyTable, cmd = m.historyTable.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) handleMessageEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		text := m.messageInput.Value()
		if err := m.Session.SetMotivationalMessage(text); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "motivational message updated"}
		}
		m.editingMessage = false
		return m
	case "esc":
		m.editingMessage = false
		return m
	default:
		var cmd tea.Cmd
		m.messageInput, cmd = m.messageInput.Update(msg)
		_ = cmd
		return m
	}
}
