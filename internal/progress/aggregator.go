package progress

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

// HistoryLimit bounds the locally cached rolling history. Older entries are
// evicted from the cache only; the remote store keeps the full log.
const HistoryLimit = 30

// HistoryStore is the local persistence slice of the plan cache.
type HistoryStore interface {
	LoadHistory() ([]model.ProgressEntry, error)
	SaveHistory([]model.ProgressEntry) error
}

// RemoteSink receives single changed entries, best-effort.
type RemoteSink interface {
	SaveProgress(ctx context.Context, userID string, entry model.ProgressEntry) error
}

// Aggregator maintains the dated completion history for one user: upsert by
// date, newest first, capped to HistoryLimit.
type Aggregator struct {
	store   HistoryStore
	remote  RemoteSink
	userID  string
	timeout time.Duration
	history []model.ProgressEntry
}

type AggregatorOption func(*Aggregator)

// WithRemote forwards every changed entry to the remote store after the
// local update, fire-and-forget.
func WithRemote(remote RemoteSink, userID string) AggregatorOption {
	return func(a *Aggregator) {
		a.remote = remote
		a.userID = userID
	}
}

func WithForwardTimeout(d time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// NewAggregator loads the cached history and normalizes it (date-desc,
// capped) so later upserts stay cheap.
func NewAggregator(store HistoryStore, opts ...AggregatorOption) (*Aggregator, error) {
	history, err := store.LoadHistory()
	if err != nil {
		return nil, err
	}
	a := &Aggregator{
		store:   store,
		timeout: 10 * time.Second,
		history: normalize(history),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Record upserts the entry for date: an existing entry has its numeric
// fields replaced, otherwise a new one is inserted. The collection is then
// re-sorted newest first and truncated to HistoryLimit. Persistence failures
// are logged; the in-memory history remains authoritative for the session.
func (a *Aggregator) Record(date model.Day, tasksCompleted, totalTasks int) {
	entry := model.NewProgressEntry(date, tasksCompleted, totalTasks)

	replaced := false
	for i := range a.history {
		if a.history[i].Date == date {
			a.history[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		a.history = append(a.history, entry)
	}
	a.history = normalize(a.history)

	if err := a.store.SaveHistory(a.history); err != nil {
		log.Printf("progress: persist history failed: %v", err)
	}
	a.forward(entry)
}

// ReplaceHistory overwrites the cached history wholesale, e.g. after pulling
// the remote log at login.
func (a *Aggregator) ReplaceHistory(history []model.ProgressEntry) {
	a.history = normalize(history)
	if err := a.store.SaveHistory(a.history); err != nil {
		log.Printf("progress: persist history failed: %v", err)
	}
}

// History returns a copy, newest first.
func (a *Aggregator) History() []model.ProgressEntry {
	out := make([]model.ProgressEntry, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Aggregator) forward(entry model.ProgressEntry) {
	if a.remote == nil {
		return
	}
	remote, userID, timeout := a.remote, a.userID, a.timeout
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := remote.SaveProgress(ctx, userID, entry); err != nil {
			log.Printf("progress: remote sync failed for %s: %v", entry.Date, err)
		}
	}()
}

func normalize(history []model.ProgressEntry) []model.ProgressEntry {
	out := make([]model.ProgressEntry, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > HistoryLimit {
		out = out[:HistoryLimit]
	}
	return out
}
