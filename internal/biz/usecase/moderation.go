package usecase

import (
	"context"
	"fmt"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
)

const (
	replyNotWelcome = "Content from this source is not welcome here"
	replyThanks     = "Thanks! Your submission was sent for review"
)

// ModerationUsecase decides what happens to each inbound non-command message:
// auto-accept for privileged senders, forward-for-review for ordinary ones,
// silent refusal for blacklisted forward origins.
type ModerationUsecase struct {
	queue    repo.QueueRepo
	gateway  repo.GatewayRepo
	screenUC *ScreenUsecase

	admins    domain.AdminSet
	blacklist map[int64]bool
}

// NewModerationUsecase creates a new moderation usecase
func NewModerationUsecase(
	queue repo.QueueRepo,
	gateway repo.GatewayRepo,
	screenUC *ScreenUsecase,
	admins domain.AdminSet,
	blacklistedChatIDs []int64,
) *ModerationUsecase {
	blacklist := make(map[int64]bool, len(blacklistedChatIDs))
	for _, id := range blacklistedChatIDs {
		blacklist[id] = true
	}
	return &ModerationUsecase{
		queue:     queue,
		gateway:   gateway,
		screenUC:  screenUC,
		admins:    admins,
		blacklist: blacklist,
	}
}

// HandleMessage runs the moderation state machine for one inbound message
func (uc *ModerationUsecase) HandleMessage(ctx context.Context, msg *domain.InboundMessage) error {
	if uc.admins.Contains(msg.SenderID) {
		return uc.handlePrivileged(ctx, msg)
	}
	return uc.handleOrdinary(ctx, msg)
}

// handlePrivileged accepts admin submissions directly, skipping review.
// The original message is deleted to keep the chat clean of raw submissions.
func (uc *ModerationUsecase) handlePrivileged(ctx context.Context, msg *domain.InboundMessage) error {
	sub, rej := Encode(msg)
	if rej != nil {
		return uc.gateway.SendText(ctx, msg.ChatID, rej.Message)
	}

	if _, err := uc.queue.Insert(ctx, *sub); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	if err := uc.gateway.DeleteMessage(ctx, msg.ChatID, msg.MessageID); err != nil {
		fmt.Printf("[Moderation] Failed to delete original message %d: %v\n", msg.MessageID, err)
	}

	fmt.Printf("[Moderation] Accepted %s from admin %d\n", sub.Kind, msg.SenderID)
	return nil
}

// handleOrdinary forwards an ordinary user's submission to the owner for
// review. Nothing is persisted until the reviewer approves.
func (uc *ModerationUsecase) handleOrdinary(ctx context.Context, msg *domain.InboundMessage) error {
	if msg.ForwardFromChatID != 0 && uc.blacklist[msg.ForwardFromChatID] {
		fmt.Printf("[Moderation] Refused blacklisted source %d\n", msg.ForwardFromChatID)
		return uc.gateway.SendText(ctx, msg.ChatID, replyNotWelcome)
	}

	sub, rej := Encode(msg)
	if rej != nil {
		return uc.gateway.SendText(ctx, msg.ChatID, rej.Message)
	}

	note := uc.screenNote(ctx, *sub)

	if err := uc.gateway.SendReviewPrompt(ctx, uc.admins.OwnerID, *sub, note); err != nil {
		return fmt.Errorf("send review prompt: %w", err)
	}
	return uc.gateway.SendText(ctx, msg.ChatID, replyThanks)
}

// HandleCallback processes a reviewer's approve/reject response.
// The callback is always acknowledged, even for unauthorized callers,
// so the prompt never shows a lingering pending state.
func (uc *ModerationUsecase) HandleCallback(ctx context.Context, cb *domain.CallbackEvent) error {
	defer func() {
		if err := uc.gateway.AnswerCallback(ctx, cb.ID); err != nil {
			fmt.Printf("[Moderation] Failed to answer callback %s: %v\n", cb.ID, err)
		}
	}()

	if !uc.admins.Contains(cb.SenderID) {
		fmt.Printf("[Moderation] Ignoring callback from non-admin %d\n", cb.SenderID)
		return nil
	}

	if cb.Action == domain.ActionApprove {
		// Re-encode the prompt content in case it no longer carries
		// acceptable media
		sub, rej := Encode(cb.Message)
		if rej != nil {
			if err := uc.gateway.SendText(ctx, cb.ChatID, rej.Message); err != nil {
				return err
			}
		} else {
			if _, err := uc.queue.Insert(ctx, *sub); err != nil {
				return fmt.Errorf("insert approved submission: %w", err)
			}
			fmt.Printf("[Moderation] Reviewer %d approved %s\n", cb.SenderID, sub.Kind)
		}
	} else {
		fmt.Printf("[Moderation] Reviewer %d rejected submission\n", cb.SenderID)
	}

	if err := uc.gateway.DeleteMessage(ctx, cb.ChatID, cb.MessageID); err != nil {
		fmt.Printf("[Moderation] Failed to delete review prompt %d: %v\n", cb.MessageID, err)
	}
	return nil
}

// screenNote runs the optional pre-screen and formats its advisory note
func (uc *ModerationUsecase) screenNote(ctx context.Context, sub domain.Submission) string {
	if uc.screenUC == nil || !uc.screenUC.IsEnabled() {
		return ""
	}
	ok, verdict, err := uc.screenUC.Assess(ctx, sub)
	if err != nil {
		fmt.Printf("[Moderation] Pre-screen error: %v\n", err)
		return ""
	}
	if ok {
		return "Pre-screen: looks acceptable"
	}
	if verdict != "" {
		return "Pre-screen: flagged (" + verdict + ")"
	}
	return "Pre-screen: flagged"
}
