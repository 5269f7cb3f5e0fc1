package repo

import (
	"context"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
)

// QueueRepo is the durable submission queue interface.
// Records are consumed exactly once: TakeRandomOne removes the record it
// returns as part of the same operation.
type QueueRepo interface {
	// Count returns the number of queued submissions
	Count(ctx context.Context) (int, error)

	// Insert persists a submission and returns the stored record
	Insert(ctx context.Context, sub domain.Submission) (*domain.QueueRecord, error)

	// TakeRandomOne removes and returns one uniformly random record.
	// Returns nil on an empty queue.
	TakeRandomOne(ctx context.Context) (*domain.QueueRecord, error)

	Close() error
}
