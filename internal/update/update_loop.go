package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fixyourlife/fixyourlife/internal/reset"
	"github.com/fixyourlife/fixyourlife/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.ResetEvents != nil {
		return waitForResetCmd(m.ResetEvents)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.syncBubbleData()

	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.clampCursor()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		if m.editingMessage {
			return m.handleMessageEditorKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Schedule:
			m.CurrentView = ViewSchedule
			return m, nil
		case m.Keys.Progress:
			m.CurrentView = ViewProgress
			return m, nil
		case m.Keys.Reports:
			m.CurrentView = ViewReports
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "g":
			return m.startGeneration()
		case "R":
			if m.Session.ResetAll() {
				m.Status = StatusBar{Text: "Daily tasks reset"}
				m.notify("Daily tasks reset", "All tasks are marked incomplete.", "info")
			} else {
				m.Status = StatusBar{Text: "nothing to reset"}
			}
			return m, nil
		case "e":
			m.editingMessage = true
			m.messageInput.SetValue(m.Session.Plan().MotivationalMessage)
			m.messageInput.Focus()
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewSchedule:
			return m.handleScheduleKey(typed), nil
		case ViewReports:
			return m.handleReportsKey(typed), nil
		}
		return m, nil
	case spinner.TickMsg:
		if m.Generating {
			var cmd tea.Cmd
			m.genSpinner, cmd = m.genSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case PlanGeneratedMsg:
		if typed.Seq != m.GenSeq {
			return m, nil
		}
		m.Generating = false
		m.Session.Replace(typed.Plan)
		m.Cursor = 0
		m.Status = StatusBar{Text: "new plan ready"}
		m.notify("Plan generated", "Your daily schedule has been updated.", "info")
		return m, nil
	case PlanGenerateErrMsg:
		if typed.Seq != m.GenSeq {
			return m, nil
		}
		m.Generating = false
		m.LastError = typed.Err
		m.Status = StatusBar{Text: fmt.Sprintf("plan generation failed: %v", typed.Err), IsError: true}
		m.notify("Plan generation failed", typed.Err.Error(), "error")
		return m, nil
	case MidnightResetMsg:
		if m.Checker != nil {
			if m.Checker.Check(m.Session) {
				m.Cursor = 0
				m.Status = StatusBar{Text: "Daily tasks reset"}
				m.notify("Daily tasks reset", "A new day has started. Good luck!", "info")
			}
		} else if m.Session.ResetAll() {
			m.Cursor = 0
			m.Status = StatusBar{Text: "Daily tasks reset"}
		}
		if m.ResetEvents != nil {
			return m, waitForResetCmd(m.ResetEvents)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s", m.Status.Text)
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewSchedule:
		leftPane = m.renderScheduleView()
		rightPane = m.renderCommandPalette() + m.renderMessageEditor() + m.renderHelpIfVisible()
	case ViewProgress:
		leftPane = m.renderProgressView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewReports:
		leftPane = m.renderReportsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	notificationView := ""
	if m.Generating {
		notificationView = "generating: " + m.genSpinner.View() + " asking your coach"
	}
	if n := m.renderNotificationsView(); n != "" {
		if notificationView != "" {
			notificationView += "\n"
		}
		notificationView += n
	}

	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("fixyourlife | view: %s | today: %s", m.CurrentView, m.today()),
		LeftPane:      leftPane,
		RightPane:     rightPane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Notification:  notificationView,
		Footer:        fmt.Sprintf("keys: %s schedule | %s progress | %s reports | g generate | R reset | / cmd | %s help | %s quit", m.Keys.Schedule, m.Keys.Progress, m.Keys.Reports, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewSchedule, ViewProgress, ViewReports:
		return true
	default:
		return false
	}
}

func waitForResetCmd(ch <-chan reset.ResetEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return MidnightResetMsg{Event: ev}
	}
}
