package update

import (
	"strings"

	"github.com/fixyourlife/fixyourlife/internal/model"
	"github.com/fixyourlife/fixyourlife/internal/views"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func renderMotivation(message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	return views.RenderMarkdown("> " + message)
}

func (m Model) today() model.Day {
	return model.DayOf(m.clock())
}
