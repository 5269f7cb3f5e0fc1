package data

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
	"github.com/anthropics/telegram-relay-bot/telegram"
)

// telegramRepo implements the chat gateway on the Telegram client
type telegramRepo struct {
	client *telegram.Client
}

// NewTelegramRepo creates a new Telegram gateway repository
func NewTelegramRepo(client *telegram.Client) repo.GatewayRepo {
	return &telegramRepo{client: client}
}

// SendSubmission re-sends a submission's media into the target chat
func (r *telegramRepo) SendSubmission(ctx context.Context, chatID int64, sub domain.Submission) error {
	return r.client.SendMedia(chatID, mediaParams(sub, nil))
}

// SendText sends a plain text message
func (r *telegramRepo) SendText(ctx context.Context, chatID int64, text string) error {
	return r.client.SendText(chatID, text)
}

// SendReviewPrompt sends the submission to the reviewer with approve/reject
// buttons. The caption is kept exactly as submitted so approval can re-encode
// the prompt content; an advisory note goes out as a separate message.
func (r *telegramRepo) SendReviewPrompt(ctx context.Context, chatID int64, sub domain.Submission, note string) error {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes", string(domain.ActionApprove)),
			tgbotapi.NewInlineKeyboardButtonData("No", string(domain.ActionReject)),
		),
	)

	if err := r.client.SendMedia(chatID, mediaParams(sub, markup)); err != nil {
		return err
	}
	if note != "" {
		return r.client.SendText(chatID, note)
	}
	return nil
}

// DeleteMessage removes a message from a chat
func (r *telegramRepo) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return r.client.DeleteMessage(chatID, messageID)
}

// AnswerCallback acknowledges a callback query
func (r *telegramRepo) AnswerCallback(ctx context.Context, callbackID string) error {
	return r.client.AnswerCallback(callbackID)
}

// ListAdministrators lists the privileged users of a chat
func (r *telegramRepo) ListAdministrators(ctx context.Context, chatID int64) ([]domain.ChatAdmin, error) {
	members, err := r.client.GetAdministrators(chatID)
	if err != nil {
		return nil, err
	}

	admins := make([]domain.ChatAdmin, 0, len(members))
	for _, m := range members {
		admins = append(admins, domain.ChatAdmin{
			UserID:  m.User.ID,
			IsOwner: m.Status == "creator",
		})
	}
	return admins, nil
}

// mediaParams converts a submission into client send parameters
func mediaParams(sub domain.Submission, markup interface{}) telegram.MediaParams {
	p := telegram.MediaParams{
		Kind:      string(sub.Kind),
		FileID:    sub.FileID,
		Caption:   sub.Caption.Text,
		ParseMode: sub.Caption.ParseMode,
	}
	if markup != nil {
		p.ReplyMarkup = markup
	}
	for _, e := range sub.Caption.Entities {
		p.Entities = append(p.Entities, tgbotapi.MessageEntity{
			Type:   e.Type,
			Offset: e.Offset,
			Length: e.Length,
			URL:    e.URL,
		})
	}
	return p
}

// FromMessage projects a Telegram message onto the domain inbound message
func FromMessage(msg *tgbotapi.Message) *domain.InboundMessage {
	if msg == nil {
		return nil
	}

	in := &domain.InboundMessage{
		MessageID:    msg.MessageID,
		ChatID:       msg.Chat.ID,
		Text:         msg.Text,
		MediaGroupID: msg.MediaGroupID,
		Caption:      msg.Caption,
		ForwardDate:  int64(msg.ForwardDate),
	}
	if msg.From != nil {
		in.SenderID = msg.From.ID
	}
	if msg.ForwardFromChat != nil {
		in.ForwardFromChatID = msg.ForwardFromChat.ID
	}
	for _, p := range msg.Photo {
		in.PhotoIDs = append(in.PhotoIDs, p.FileID)
	}
	if msg.Video != nil {
		in.VideoID = msg.Video.FileID
	}
	if msg.Animation != nil {
		in.AnimationID = msg.Animation.FileID
	}
	for _, e := range msg.CaptionEntities {
		in.CaptionEntities = append(in.CaptionEntities, domain.CaptionEntity{
			Type:   e.Type,
			Offset: e.Offset,
			Length: e.Length,
			URL:    e.URL,
		})
	}
	return in
}

// FromCallback projects a Telegram callback query onto the domain event
func FromCallback(cb *tgbotapi.CallbackQuery) *domain.CallbackEvent {
	if cb == nil {
		return nil
	}

	event := &domain.CallbackEvent{
		ID:     cb.ID,
		Action: domain.CallbackAction(cb.Data),
	}
	if cb.From != nil {
		event.SenderID = cb.From.ID
	}
	if cb.Message != nil {
		event.ChatID = cb.Message.Chat.ID
		event.MessageID = cb.Message.MessageID
		event.Message = FromMessage(cb.Message)
	}
	return event
}
