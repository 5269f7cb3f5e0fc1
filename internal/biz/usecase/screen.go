package usecase

import (
	"context"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
)

// ScreenUsecase wraps the optional submission pre-screen.
// The verdict is advisory only and never rejects a submission on its own.
type ScreenUsecase struct {
	screenRepo repo.ScreenRepo
}

// NewScreenUsecase creates a new screen usecase
func NewScreenUsecase(screenRepo repo.ScreenRepo) *ScreenUsecase {
	return &ScreenUsecase{screenRepo: screenRepo}
}

// IsEnabled returns whether pre-screening is configured
func (uc *ScreenUsecase) IsEnabled() bool {
	return uc != nil && uc.screenRepo != nil
}

// Assess asks the pre-screen for a verdict on the submission
func (uc *ScreenUsecase) Assess(ctx context.Context, sub domain.Submission) (bool, string, error) {
	if !uc.IsEnabled() {
		return true, "", nil
	}
	return uc.screenRepo.Assess(ctx, sub)
}
