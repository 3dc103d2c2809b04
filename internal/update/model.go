// Package update holds the bubbletea model for the dashboard. State
// changes flow through Update; rendering is delegated to the views
// package.
package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	pbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/fixyourlife/fixyourlife/internal/config"
	"github.com/fixyourlife/fixyourlife/internal/model"
	"github.com/fixyourlife/fixyourlife/internal/plan"
	"github.com/fixyourlife/fixyourlife/internal/progress"
	"github.com/fixyourlife/fixyourlife/internal/reset"
)

type View string

const (
	ViewSchedule View = "Schedule"
	ViewProgress View = "Progress"
	ViewReports  View = "Reports"
)

type ReportPeriod string

const (
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Schedule string
	Progress string
	Reports  string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	CurrentView View
	Session     *plan.Session
	History     *progress.Aggregator
	Checker     *reset.Checker
	ResetEvents <-chan reset.ResetEvent
	Generator   plan.Generator
	Inputs      map[string]string

	Cursor         int
	ReportPeriod   ReportPeriod
	Palette        CommandPaletteState
	HelpVisible    bool
	Quitting       bool
	LastError      error
	Status         StatusBar
	Keys           GlobalKeyMap
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier

	// GenSeq tags in-flight generations; replies with an older seq
	// are stale and dropped.
	GenSeq     int
	Generating bool

	editingMessage bool

	clock func() time.Time

	// Bubble components used for rich TUI controls
	scheduleList list.Model
	historyTable table.Model
	dayProgress  pbar.Model
	genSpinner   spinner.Model
	helpModel    help.Model
	msgViewport  viewport.Model
	messageInput textinput.Model
	commandInput textinput.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type PlanGeneratedMsg struct {
	Seq  int
	Plan model.PlanData
}

type PlanGenerateErrMsg struct {
	Seq int
	Err error
}

type MidnightResetMsg struct {
	Event reset.ResetEvent
}

func NewModel(session *plan.Session, history *progress.Aggregator) Model {
	m := Model{
		CurrentView:  ViewSchedule,
		Session:      session,
		History:      history,
		ReportPeriod: PeriodWeek,
		Keys: GlobalKeyMap{
			Schedule: "1",
			Progress: "2",
			Reports:  "3",
			Help:     "?",
			Quit:     "q",
		},
		notifier: NoopDesktopNotifier{},
		clock:    time.Now,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

type RuntimeDeps struct {
	Checker     *reset.Checker
	ResetEvents <-chan reset.ResetEvent
	Generator   plan.Generator
	Inputs      map[string]string
	Notifier    DesktopNotifier
}

func NewModelWithRuntime(session *plan.Session, history *progress.Aggregator, cfg config.Config, deps RuntimeDeps) Model {
	m := NewModel(session, history)
	m.Checker = deps.Checker
	m.ResetEvents = deps.ResetEvents
	m.Generator = deps.Generator
	m.Inputs = deps.Inputs
	m.DesktopEnabled = cfg.DesktopNotifications
	if deps.Notifier != nil {
		m.notifier = deps.Notifier
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.scheduleList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.scheduleList.Title = "Daily Schedule"
	m.scheduleList.SetShowHelp(false)
	m.scheduleList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Rate", Width: 6},
		{Title: "Done", Width: 6},
		{Title: "Total", Width: 6},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.dayProgress = pbar.New(pbar.WithDefaultGradient())

	m.genSpinner = spinner.New()
	m.genSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.msgViewport = viewport.New(54, 10)

	m.messageInput = textinput.New()
	m.messageInput.Prompt = "msg> "
	m.messageInput.CharLimit = 256
	m.messageInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48
}

func (m *Model) syncBubbleData() {
	schedule := m.Session.Schedule()

	items := make([]list.Item, 0, len(schedule))
	for _, item := range schedule {
		desc := item.Time
		if item.Completed {
			desc += " (done)"
		}
		items = append(items, listItem{title: item.Task, description: desc})
	}
	m.scheduleList.SetItems(items)
	if len(items) > 0 && m.Cursor < len(items) {
		m.scheduleList.Select(m.Cursor)
	}

	history := m.History.History()
	rows := make([]table.Row, 0, len(history))
	for _, entry := range history {
		rows = append(rows, table.Row{
			string(entry.Date),
			fmt.Sprintf("%d%%", progress.RoundRate(entry.CompletionRate)),
			fmt.Sprintf("%d", entry.TasksCompleted),
			fmt.Sprintf("%d", entry.TotalTasks),
		})
	}
	m.historyTable.SetRows(rows)

	completed := m.Session.Plan().CompletedCount()
	total := len(schedule)
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total)
	}
	_ = m.dayProgress.SetPercent(pct)

	m.msgViewport.SetContent(renderMotivation(m.Session.Plan().MotivationalMessage))
	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.editingMessage {
		m.messageInput.Focus()
	}
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
