// Package remote persists daily progress and onboarding profiles in a
// shared database so progress survives local cache loss and can be
// read from other devices.
package remote

import (
	"context"
	"errors"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

var ErrNotFound = errors.New("remote: not found")

// ProgressRecord is a stored daily progress row for one user.
type ProgressRecord struct {
	ID    string
	Entry model.ProgressEntry
}

// Store is the remote persistence surface. One row per (user, date);
// saving an existing date overwrites it.
type Store interface {
	SaveProgress(ctx context.Context, userID string, entry model.ProgressEntry) error
	LoadProgress(ctx context.Context, userID string, limit int) ([]model.ProgressEntry, error)

	SaveProfile(ctx context.Context, userID string, answers map[string]string) error
	LoadProfile(ctx context.Context, userID string) (map[string]string, error)
}
