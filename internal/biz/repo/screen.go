package repo

import (
	"context"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
)

// ScreenRepo is the optional submission pre-screen interface.
// A nil ScreenRepo means pre-screening is disabled.
type ScreenRepo interface {
	// Assess returns whether the submission looks acceptable plus the
	// model's raw verdict text
	Assess(ctx context.Context, sub domain.Submission) (bool, string, error)
}
