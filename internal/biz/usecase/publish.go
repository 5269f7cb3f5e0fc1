package usecase

import (
	"context"
	"fmt"

	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
)

// PublishUsecase re-sends queued submissions into the public chat.
// In debug mode publishes go to the owner instead.
type PublishUsecase struct {
	queue   repo.QueueRepo
	gateway repo.GatewayRepo

	publicChatID int64
	ownerID      int64
	debug        bool
}

// NewPublishUsecase creates a new publish usecase
func NewPublishUsecase(
	queue repo.QueueRepo,
	gateway repo.GatewayRepo,
	publicChatID int64,
	ownerID int64,
	debug bool,
) *PublishUsecase {
	return &PublishUsecase{
		queue:        queue,
		gateway:      gateway,
		publicChatID: publicChatID,
		ownerID:      ownerID,
		debug:        debug,
	}
}

// Backlog returns the current queue size
func (uc *PublishUsecase) Backlog(ctx context.Context) (int, error) {
	return uc.queue.Count(ctx)
}

// PublishBatch dequeues up to count submissions and sends them sequentially.
// Stops early without error when the queue drains mid-batch. Returns the
// number actually published.
func (uc *PublishUsecase) PublishBatch(ctx context.Context, count int) (int, error) {
	target := uc.publicChatID
	if uc.debug {
		target = uc.ownerID
	}

	published := 0
	for i := 0; i < count; i++ {
		rec, err := uc.queue.TakeRandomOne(ctx)
		if err != nil {
			return published, fmt.Errorf("take submission: %w", err)
		}
		if rec == nil {
			break
		}

		if err := uc.gateway.SendSubmission(ctx, target, rec.Submission); err != nil {
			// The record was already consumed by the take; delivery
			// is at-least-once best-effort
			fmt.Printf("[Publish] Failed to send record %d: %v\n", rec.ID, err)
			continue
		}
		published++
	}

	return published, nil
}
