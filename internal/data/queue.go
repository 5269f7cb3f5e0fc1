package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// recordTypeMessage is the discriminator for queued submissions.
// Other record kinds may share the table later.
const recordTypeMessage = "message"

// queueRepo implements the submission queue on SQLite
type queueRepo struct {
	db *sql.DB

	// Serializes TakeRandomOne so no record is consumed twice
	takeMu sync.Mutex
	rng    *rand.Rand
}

// NewQueueRepo opens (and if needed initializes) the queue database
func NewQueueRepo(dbPath string, rng *rand.Rand) (repo.QueueRepo, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at INTEGER NOT NULL DEFAULT (unixepoch())
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// Create index
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_records_type ON records(type)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &queueRepo{db: db, rng: rng}, nil
}

// Count returns the number of queued submissions
func (r *queueRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM records WHERE type = ?
	`, recordTypeMessage)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Insert persists a submission and returns the stored record
func (r *queueRepo) Insert(ctx context.Context, sub domain.Submission) (*domain.QueueRecord, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO records (type, payload) VALUES (?, ?)
	`, recordTypeMessage, string(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read record id: %w", err)
	}

	return &domain.QueueRecord{ID: id, Submission: sub}, nil
}

// TakeRandomOne removes and returns one uniformly random queued submission.
// Select-by-offset and delete run in one transaction so the record is either
// fully consumed or still fully present.
func (r *queueRepo) TakeRandomOne(ctx context.Context) (*domain.QueueRecord, error) {
	r.takeMu.Lock()
	defer r.takeMu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin take: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM records WHERE type = ?
	`, recordTypeMessage)
	var count int
	if err := row.Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	offset := r.rng.Intn(count)
	row = tx.QueryRowContext(ctx, `
		SELECT id, payload FROM records WHERE type = ? ORDER BY id LIMIT 1 OFFSET ?
	`, recordTypeMessage, offset)

	var id int64
	var payload string
	if err := row.Scan(&id, &payload); err != nil {
		return nil, fmt.Errorf("failed to pick record: %w", err)
	}

	var sub domain.Submission
	if err := json.Unmarshal([]byte(payload), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %d: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to delete record %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit take: %w", err)
	}

	return &domain.QueueRecord{ID: id, Submission: sub}, nil
}

// Close closes the database connection
func (r *queueRepo) Close() error {
	return r.db.Close()
}
