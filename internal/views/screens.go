package views

import (
	"fmt"
	"strings"
)

type ScheduleItemData struct {
	Index           int
	Time            string
	Task            string
	Completed       bool
	Details         string
	MealSuggestions []string
}

type SchedulePanelData struct {
	ListView   string
	Items      []ScheduleItemData
	Cursor     int
	Expanded   int
	Generating bool
}

type ProgressPanelData struct {
	Date            string
	Completed       int
	Total           int
	RatePct         int
	ProgressView    string
	Streak          int
	MessageMarkdown string
	RecoverySteps   []string
}

type ReportRowData struct {
	Date      string
	RatePct   int
	Completed int
	Total     int
}

type ReportsPanelData struct {
	Period      string
	From        string
	To          string
	AverageRate int
	HighestRate int
	ActiveDays  int
	TableView   string
	Rows        []ReportRowData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderSchedulePanel(data SchedulePanelData) string {
	var b strings.Builder
	b.WriteString("schedule:\n")
	b.WriteString("actions: [j/k]move [space]toggle [enter]details [g]generate [R]reset\n")
	b.WriteString(data.ListView + "\n")
	if data.Generating {
		b.WriteString("(generating a new plan...)\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no plan yet - press g to generate one)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if item.Index == data.Cursor {
			cursor = ">"
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, check, item.Time, item.Task))
		if item.Index == data.Expanded {
			if item.Details != "" {
				b.WriteString(fmt.Sprintf("    details: %s\n", item.Details))
			}
			for _, s := range item.MealSuggestions {
				b.WriteString(fmt.Sprintf("    - %s\n", s))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	b.WriteString("progress:\n")
	b.WriteString(fmt.Sprintf("date: %s\n", data.Date))
	rate := RateStyle(data.RatePct).Render(fmt.Sprintf("%d%%", data.RatePct))
	b.WriteString(fmt.Sprintf("completed: %d/%d (%s)\n", data.Completed, data.Total, rate))
	b.WriteString(fmt.Sprintf("bar: %s\n", data.ProgressView))
	b.WriteString(fmt.Sprintf("streak: %d day(s)\n", data.Streak))
	if data.MessageMarkdown != "" {
		b.WriteString("\nmotivation:\n")
		b.WriteString(data.MessageMarkdown + "\n")
	}
	if len(data.RecoverySteps) > 0 {
		b.WriteString("\nrecovery steps:\n")
		for i, step := range data.RecoverySteps {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderReportsPanel(data ReportsPanelData) string {
	var b strings.Builder
	b.WriteString("reports:\n")
	b.WriteString(fmt.Sprintf("period: %s (%s to %s)\n", data.Period, data.From, data.To))
	b.WriteString("actions: [w]week [m]month [j/k]scroll history\n")
	b.WriteString(fmt.Sprintf("average: %d%% | best: %d%% | active days: %d\n", data.AverageRate, data.HighestRate, data.ActiveDays))
	b.WriteString(data.TableView + "\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no history yet)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		rate := RateStyle(row.RatePct).Render(fmt.Sprintf("%3d%%", row.RatePct))
		b.WriteString(fmt.Sprintf("%s  %s  %d/%d\n", row.Date, rate, row.Completed, row.Total))
	}
	return strings.TrimSpace(b.String())
}

func RenderMessageEditor(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("\nmessage-editor:\nkeys: [enter] save [esc] cancel\n%s", inputView)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
