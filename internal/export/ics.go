package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

const scheduleClockLayout = "03:04 PM"

// eventDuration is the block reserved per schedule item. Items carry a
// start time only.
const eventDuration = time.Hour

// WriteICS renders the day's schedule as an iCalendar file so the plan
// can be imported into any calendar app. Items whose time text does
// not parse are skipped rather than failing the whole export.
func WriteICS(w io.Writer, day model.Day, items []model.ScheduleItem, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	if err := day.Validate(); err != nil {
		return err
	}
	base := day.Time()

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//fixyourlife//schedule//EN")
	line("CALSCALE:GREGORIAN")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, item := range items {
		clock, parseErr := time.Parse(scheduleClockLayout, strings.TrimSpace(item.Time))
		if parseErr != nil {
			continue
		}
		start := time.Date(base.Year(), base.Month(), base.Day(),
			clock.Hour(), clock.Minute(), 0, 0, loc)
		end := start.Add(eventDuration)

		line("BEGIN:VEVENT")
		line("UID:" + uuid.NewString() + "@fixyourlife")
		line("DTSTAMP:" + stamp)
		line("DTSTART:" + start.UTC().Format("20060102T150405Z"))
		line("DTEND:" + end.UTC().Format("20060102T150405Z"))
		line("SUMMARY:" + escapeICS(item.Task))
		if item.Details != "" {
			line("DESCRIPTION:" + escapeICS(item.Details))
		}
		line("END:VEVENT")
	}
	line("END:VCALENDAR")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// escapeICS applies RFC 5545 text escaping.
func escapeICS(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
