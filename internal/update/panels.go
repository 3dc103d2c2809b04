package update

import (
	"github.com/fixyourlife/fixyourlife/internal/model"
	"github.com/fixyourlife/fixyourlife/internal/progress"
	"github.com/fixyourlife/fixyourlife/internal/views"
)

func (m Model) renderScheduleView() string {
	schedule := m.Session.Schedule()
	items := make([]views.ScheduleItemData, 0, len(schedule))
	for i, item := range schedule {
		data := views.ScheduleItemData{
			Index:           i,
			Time:            item.Time,
			Task:            item.Task,
			Completed:       item.Completed,
			Details:         item.Details,
			MealSuggestions: item.MealSuggestions,
		}
		// Generated plans rarely carry per-task guidance; derive it from
		// the task text when the item is expanded.
		if i == m.Session.Expanded() && data.Details == "" {
			derived := model.LookupTaskDetails(item.Task)
			data.Details = derived.Details
			data.MealSuggestions = derived.MealSuggestions
		}
		items = append(items, data)
	}
	return views.RenderSchedulePanel(views.SchedulePanelData{
		ListView:   m.scheduleList.View(),
		Items:      items,
		Cursor:     m.Cursor,
		Expanded:   m.Session.Expanded(),
		Generating: m.Generating,
	})
}

func (m Model) renderProgressView() string {
	schedule := m.Session.Schedule()
	completed := m.Session.Plan().CompletedCount()
	total := len(schedule)
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total)
	}

	return views.RenderProgressPanel(views.ProgressPanelData{
		Date:            string(m.today()),
		Completed:       completed,
		Total:           total,
		RatePct:         progress.RoundRate(pct * 100),
		ProgressView:    m.dayProgress.ViewAs(pct),
		Streak:          progress.Streak(m.History.History()),
		MessageMarkdown: m.msgViewport.View(),
		RecoverySteps:   m.Session.Plan().RecoverySteps,
	})
}

func (m Model) renderReportsView() string {
	var from, to model.Day
	today := m.today()
	if m.ReportPeriod == PeriodMonth {
		from, to = progress.MonthRange(today)
	} else {
		from, to = progress.WeekRange(today)
	}

	history := m.History.History()
	summary := progress.PeriodSummary(history, from, to)

	rows := make([]views.ReportRowData, 0, len(history))
	for _, entry := range history {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		rows = append(rows, views.ReportRowData{
			Date:      string(entry.Date),
			RatePct:   progress.RoundRate(entry.CompletionRate),
			Completed: entry.TasksCompleted,
			Total:     entry.TotalTasks,
		})
	}

	return views.RenderReportsPanel(views.ReportsPanelData{
		Period:      string(m.ReportPeriod),
		From:        string(from),
		To:          string(to),
		AverageRate: progress.RoundRate(summary.AverageRate),
		HighestRate: progress.RoundRate(summary.HighestRate),
		ActiveDays:  summary.ActiveDays,
		TableView:   m.historyTable.View(),
		Rows:        rows,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderMessageEditor() string {
	return views.RenderMessageEditor(m.editingMessage, m.messageInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	last := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(last.Level, last.Body)
}
