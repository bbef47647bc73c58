/*
Package sqlite persists the holiday calendar and exclusion list.

PURPOSE:
  The calculation engine is pure; its only stateful collaborator is the
  holiday calendar. This package stores holidays and exclusions in
  SQLite and hands each calculation an immutable snapshot.

KEY TABLES:
  holidays:   raw holiday records as entered or imported (dates may
              fall on weekends; normalization happens per calculation)
  exclusions: dates the user has marked as "not actually a holiday"

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers never
  block the writer. A RWMutex guards the connection.

USAGE:
  store, err := sqlite.New("./data/leave.db")  // ":memory:" for tests
  holidays, exclusions, err := store.Snapshot(ctx)

SEE ALSO:
  - calendar/normalize.go: snapshot consumers normalize before use
  - api/handlers.go: CRUD endpoints over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/leave-engine/calendar"
)

// Store implements holiday and exclusion persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store backed by the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		id   TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_date_name
		ON holidays(date, name);
	CREATE INDEX IF NOT EXISTS idx_holidays_date
		ON holidays(date);

	CREATE TABLE IF NOT EXISTS exclusions (
		date TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// SaveHoliday inserts a holiday record. An empty ID is assigned a fresh
// UUID; re-saving the same date+name pair is a no-op upsert.
func (s *Store) SaveHoliday(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES (?, ?, ?)
		ON CONFLICT(date, name) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, h.ID, h.Date.String(), h.Name); err != nil {
		return calendar.Holiday{}, err
	}
	return h, nil
}

// SaveHolidays inserts a batch of records, assigning IDs as needed.
func (s *Store) SaveHolidays(ctx context.Context, holidays []calendar.Holiday) error {
	for _, h := range holidays {
		if _, err := s.SaveHoliday(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

// DeleteHoliday deletes a holiday by ID. Deleting an unknown ID is not
// an error.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	return err
}

// ListHolidays returns all raw holiday records, ascending by date.
func (s *Store) ListHolidays(ctx context.Context) ([]calendar.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, name FROM holidays ORDER BY date ASC, name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		var dateStr string
		if err := rows.Scan(&h.ID, &dateStr, &h.Name); err != nil {
			return nil, err
		}
		if h.Date, err = calendar.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("corrupt holiday row %s: %w", h.ID, err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// =============================================================================
// EXCLUSIONS
// =============================================================================

// SaveExclusion marks a date as not-a-holiday. Saving the same date
// twice updates the label.
func (s *Store) SaveExclusion(ctx context.Context, ex calendar.Exclusion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO exclusions (date, name)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET name = excluded.name
	`
	_, err := s.db.ExecContext(ctx, query, ex.Date.String(), ex.Name)
	return err
}

// DeleteExclusion removes the exclusion on the given date.
func (s *Store) DeleteExclusion(ctx context.Context, date calendar.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM exclusions WHERE date = ?", date.String())
	return err
}

// ListExclusions returns all exclusions, ascending by date.
func (s *Store) ListExclusions(ctx context.Context) ([]calendar.Exclusion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT date, name FROM exclusions ORDER BY date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exclusions []calendar.Exclusion
	for rows.Next() {
		var ex calendar.Exclusion
		var dateStr string
		if err := rows.Scan(&dateStr, &ex.Name); err != nil {
			return nil, err
		}
		if ex.Date, err = calendar.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("corrupt exclusion row %s: %w", dateStr, err)
		}
		exclusions = append(exclusions, ex)
	}
	return exclusions, rows.Err()
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot returns the current holiday and exclusion lists as
// independent slices. The engine receives these per calculation; later
// edits never affect a calculation already in flight.
func (s *Store) Snapshot(ctx context.Context) ([]calendar.Holiday, []calendar.Exclusion, error) {
	holidays, err := s.ListHolidays(ctx)
	if err != nil {
		return nil, nil, err
	}
	exclusions, err := s.ListExclusions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return holidays, exclusions, nil
}
