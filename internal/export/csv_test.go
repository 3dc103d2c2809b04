package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

func TestWriteCSV(t *testing.T) {
	history := []model.ProgressEntry{
		model.NewProgressEntry("2024-01-03", 3, 4),
		model.NewProgressEntry("2024-01-02", 1, 3),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, history); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Completion Rate,Tasks Completed,Total Tasks" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2024-01-03,75.00%,3,4" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2024-01-02,33.33%") {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}

func TestWriteCSVEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Date,Completion Rate,Tasks Completed,Total Tasks" {
		t.Fatalf("expected header only, got %q", buf.String())
	}
}
