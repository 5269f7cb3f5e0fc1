package repo

import (
	"context"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
)

// GatewayRepo is the chat gateway interface.
// Responsible for all outbound traffic to the messaging platform.
type GatewayRepo interface {
	// SendSubmission re-sends a submission's media into the target chat
	SendSubmission(ctx context.Context, chatID int64, sub domain.Submission) error

	// SendText sends a plain text message
	SendText(ctx context.Context, chatID int64, text string) error

	// SendReviewPrompt sends the submission to the reviewer with
	// approve/reject choices. note is appended to the prompt caption
	// when non-empty.
	SendReviewPrompt(ctx context.Context, chatID int64, sub domain.Submission, note string) error

	// DeleteMessage removes a message from a chat
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// AnswerCallback acknowledges an interactive prompt response.
	// Must be called exactly once per callback regardless of outcome.
	AnswerCallback(ctx context.Context, callbackID string) error

	// ListAdministrators lists the privileged users of a chat
	ListAdministrators(ctx context.Context, chatID int64) ([]domain.ChatAdmin, error)
}
