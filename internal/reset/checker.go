// Package reset rolls the daily schedule over at local midnight. A
// persisted marker records the last day a reset ran so restarts and
// missed midnights collapse into a single catch-up reset.
package reset

import (
	"log"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

// ResetMarker persists the last day a reset was applied.
type ResetMarker interface {
	LastResetDate() (model.Day, bool, error)
	SetLastResetDate(day model.Day) error
}

// Resetter clears task completion for the current plan. Implemented by
// plan.Session.
type Resetter interface {
	ResetAll() bool
}

type Notifier interface {
	Notify(title, body string)
}

type Checker struct {
	marker   ResetMarker
	notifier Notifier
	clock    func() time.Time
}

type CheckerOption func(*Checker)

func WithNotifier(n Notifier) CheckerOption {
	return func(c *Checker) { c.notifier = n }
}

func WithClock(clock func() time.Time) CheckerOption {
	return func(c *Checker) { c.clock = clock }
}

func NewChecker(marker ResetMarker, opts ...CheckerOption) *Checker {
	c := &Checker{
		marker: marker,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check resets the schedule if the marker is older than today. No
// matter how many midnights were missed, at most one reset runs.
// Returns true when a reset was applied.
func (c *Checker) Check(target Resetter) bool {
	today := model.DayOf(c.clock())

	last, ok, err := c.marker.LastResetDate()
	if err != nil {
		log.Printf("reset: read last reset date: %v", err)
	}
	if ok && !last.Before(today) {
		return false
	}

	reset := target.ResetAll()

	if err := c.marker.SetLastResetDate(today); err != nil {
		log.Printf("reset: persist last reset date: %v", err)
	}

	if reset && c.notifier != nil {
		c.notifier.Notify("Daily tasks reset", "A new day has started. Good luck!")
	}
	return reset
}
