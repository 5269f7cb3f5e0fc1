package data

import (
	"context"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
	"github.com/anthropics/telegram-relay-bot/screener"
)

// screenRepo implements the pre-screen repository
type screenRepo struct {
	client *screener.Client
}

// NewScreenRepo creates a pre-screen repository.
// A nil client disables pre-screening (returns a nil repository).
func NewScreenRepo(client *screener.Client) repo.ScreenRepo {
	if client == nil {
		return nil
	}
	return &screenRepo{client: client}
}

// Assess returns the model's acceptability verdict for the submission
func (r *screenRepo) Assess(ctx context.Context, sub domain.Submission) (bool, string, error) {
	acceptable, verdict := r.client.Assess(string(sub.Kind), sub.Caption.Text)
	return acceptable, verdict, nil
}
