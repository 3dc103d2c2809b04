package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("remote: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveProgress upserts the row for (userID, entry.Date). The row id is
// assigned on first insert and kept across updates.
func (s *SQLiteStore) SaveProgress(ctx context.Context, userID string, entry model.ProgressEntry) error {
	if userID == "" {
		return errors.New("remote: empty user id")
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_progress (id, user_id, date, completion_rate, tasks_completed, total_tasks, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			completion_rate = excluded.completion_rate,
			tasks_completed = excluded.tasks_completed,
			total_tasks = excluded.total_tasks,
			updated_at = excluded.updated_at`,
		uuid.NewString(), userID, string(entry.Date),
		entry.CompletionRate, entry.TasksCompleted, entry.TotalTasks,
		mustTime(time.Now()),
	)
	return err
}

// LoadProgress returns the user's rows newest first. A limit <= 0
// returns everything.
func (s *SQLiteStore) LoadProgress(ctx context.Context, userID string, limit int) ([]model.ProgressEntry, error) {
	query := `
		SELECT date, completion_rate, tasks_completed, total_tasks
		FROM daily_progress WHERE user_id = ? ORDER BY date DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ProgressEntry, 0)
	for rows.Next() {
		entry, scanErr := scanProgress(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// SaveProfile replaces the user's onboarding answers wholesale inside a
// transaction.
func (s *SQLiteStore) SaveProfile(ctx context.Context, userID string, answers map[string]string) error {
	if userID == "" {
		return errors.New("remote: empty user id")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID); err != nil {
		return err
	}
	now := mustTime(time.Now())
	for key, value := range answers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (user_id, key, value, updated_at)
			VALUES (?, ?, ?, ?)`,
			userID, key, value, now,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadProfile(ctx context.Context, userID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value FROM profiles WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(s scanner) (model.ProgressEntry, error) {
	var out model.ProgressEntry
	var date string
	if err := s.Scan(&date, &out.CompletionRate, &out.TasksCompleted, &out.TotalTasks); err != nil {
		return model.ProgressEntry{}, err
	}
	day, err := model.ParseDay(date)
	if err != nil {
		return model.ProgressEntry{}, err
	}
	out.Date = day
	return out, nil
}
