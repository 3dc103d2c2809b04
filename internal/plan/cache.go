package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

// Cache is the local persisted key/value store that survives restarts. It is
// a best-effort accelerator; the remote store stays the long-lived source of
// truth for progress history.
type Cache interface {
	LoadPlan() (model.PlanData, bool, error)
	SavePlan(model.PlanData) error
	LoadHistory() ([]model.ProgressEntry, error)
	SaveHistory([]model.ProgressEntry) error
	LastResetDate() (model.Day, bool, error)
	SetLastResetDate(model.Day) error
}

const (
	planFileName    = "plan.json"
	historyFileName = "progress_history.json"
	resetFileName   = "last_reset.json"
)

type FileCache struct {
	dir string
}

func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) LoadPlan() (model.PlanData, bool, error) {
	var plan model.PlanData
	ok, err := c.readJSON(planFileName, &plan)
	return plan, ok, err
}

func (c *FileCache) SavePlan(plan model.PlanData) error {
	return c.writeJSON(planFileName, plan)
}

func (c *FileCache) LoadHistory() ([]model.ProgressEntry, error) {
	history := make([]model.ProgressEntry, 0)
	if _, err := c.readJSON(historyFileName, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *FileCache) SaveHistory(history []model.ProgressEntry) error {
	if history == nil {
		history = make([]model.ProgressEntry, 0)
	}
	return c.writeJSON(historyFileName, history)
}

type resetMarker struct {
	LastResetDate string `json:"last_reset_date"`
}

func (c *FileCache) LastResetDate() (model.Day, bool, error) {
	var marker resetMarker
	ok, err := c.readJSON(resetFileName, &marker)
	if err != nil || !ok {
		return "", false, err
	}
	day, err := model.ParseDay(marker.LastResetDate)
	if err != nil {
		return "", false, err
	}
	return day, true, nil
}

func (c *FileCache) SetLastResetDate(day model.Day) error {
	return c.writeJSON(resetFileName, resetMarker{LastResetDate: string(day)})
}

func (c *FileCache) readJSON(name string, out any) (bool, error) {
	path := filepath.Join(c.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (c *FileCache) writeJSON(name string, in any) error {
	payload, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(c.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
