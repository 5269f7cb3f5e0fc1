package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is a thin wrapper around the Telegram Bot API
type Client struct {
	api *tgbotapi.BotAPI
}

// MediaParams describes one outbound media message
type MediaParams struct {
	Kind        string // photo, video or animation
	FileID      string
	Caption     string
	ParseMode   string
	Entities    []tgbotapi.MessageEntity
	ReplyMarkup interface{}
}

// NewClient creates a new Telegram client
func NewClient(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}

	fmt.Printf("[Telegram] Authorized as @%s\n", api.Self.UserName)
	return &Client{api: api}, nil
}

// Updates starts long polling and returns the update channel
func (c *Client) Updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	fmt.Println("[Telegram] Starting long polling...")
	return c.api.GetUpdatesChan(u)
}

// Stop stops long polling
func (c *Client) Stop() {
	c.api.StopReceivingUpdates()
}

// SendText sends a plain text message
func (c *Client) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}
	return nil
}

// SendMedia sends a photo, video or animation by file ID
func (c *Client) SendMedia(chatID int64, p MediaParams) error {
	var chattable tgbotapi.Chattable

	switch p.Kind {
	case "photo":
		cfg := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(p.FileID))
		cfg.Caption = p.Caption
		cfg.ParseMode = p.ParseMode
		cfg.CaptionEntities = p.Entities
		cfg.ReplyMarkup = p.ReplyMarkup
		chattable = cfg
	case "video":
		cfg := tgbotapi.NewVideo(chatID, tgbotapi.FileID(p.FileID))
		cfg.Caption = p.Caption
		cfg.ParseMode = p.ParseMode
		cfg.CaptionEntities = p.Entities
		cfg.ReplyMarkup = p.ReplyMarkup
		chattable = cfg
	case "animation":
		cfg := tgbotapi.NewAnimation(chatID, tgbotapi.FileID(p.FileID))
		cfg.Caption = p.Caption
		cfg.ParseMode = p.ParseMode
		cfg.CaptionEntities = p.Entities
		cfg.ReplyMarkup = p.ReplyMarkup
		chattable = cfg
	default:
		return fmt.Errorf("unknown media kind %q", p.Kind)
	}

	if _, err := c.api.Send(chattable); err != nil {
		return fmt.Errorf("send %s failed: %w", p.Kind, err)
	}
	return nil
}

// DeleteMessage deletes a message from a chat
func (c *Client) DeleteMessage(chatID int64, messageID int) error {
	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("delete message failed: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query
func (c *Client) AnswerCallback(callbackID string) error {
	if _, err := c.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("answer callback failed: %w", err)
	}
	return nil
}

// GetAdministrators lists the administrators of a chat
func (c *Client) GetAdministrators(chatID int64) ([]tgbotapi.ChatMember, error) {
	members, err := c.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, fmt.Errorf("get administrators failed: %w", err)
	}
	return members, nil
}
