// Package export renders progress history and schedules into
// interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

// WriteCSV writes the history in its stored order, one row per day.
func WriteCSV(w io.Writer, history []model.ProgressEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Completion Rate", "Tasks Completed", "Total Tasks"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range history {
		record := []string{
			string(entry.Date),
			fmt.Sprintf("%.2f%%", entry.CompletionRate),
			fmt.Sprintf("%d", entry.TasksCompleted),
			fmt.Sprintf("%d", entry.TotalTasks),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
