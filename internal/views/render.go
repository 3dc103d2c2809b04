// Package views renders plain data structs to styled terminal output. It
// holds no application state; the update package decides what to show.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header        string
	LeftPane      string
	RightPane     string
	StatusLine    string
	StatusIsError bool
	Notification  string
	Footer        string
}

const (
	// The schedule pane carries the day's tasks and gets the wider column;
	// the right rail holds the palette, editor, and help.
	mainPaneWidth = 62
	railWidth     = 44
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mainStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	railStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	rateHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rateMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	rateLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RateStyle grades a whole-percentage completion rate for display.
func RateStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return rateHighStyle
	case pct >= 40:
		return rateMidStyle
	default:
		return rateLowStyle
	}
}

func RenderApp(data AppData) string {
	main := mainStyle.Width(mainPaneWidth).Render(data.LeftPane)
	row := main
	if data.RightPane != "" {
		rail := railStyle.Width(railWidth).Render(data.RightPane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, main, rail)
	}

	lines := []string{headerStyle.Render(data.Header), row}
	if data.StatusLine != "" {
		if data.StatusIsError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Notification != "" {
		lines = append(lines, noticeStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
