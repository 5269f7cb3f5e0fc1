package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
	"github.com/anthropics/telegram-relay-bot/internal/biz/usecase"
	"github.com/anthropics/telegram-relay-bot/internal/data"
	"github.com/anthropics/telegram-relay-bot/internal/service"
	"github.com/anthropics/telegram-relay-bot/telegram"
)

// TelegramServer routes inbound updates to the moderation workflow,
// command handling and the review callback handler.
type TelegramServer struct {
	client    *telegram.Client
	gateway   repo.GatewayRepo
	modUC     *usecase.ModerationUsecase
	publishUC *usecase.PublishUsecase
	scheduler *service.PostScheduler

	admins domain.AdminSet
}

// NewTelegramServer creates a new Telegram server
func NewTelegramServer(
	client *telegram.Client,
	gateway repo.GatewayRepo,
	modUC *usecase.ModerationUsecase,
	publishUC *usecase.PublishUsecase,
	scheduler *service.PostScheduler,
	admins domain.AdminSet,
) *TelegramServer {
	return &TelegramServer{
		client:    client,
		gateway:   gateway,
		modUC:     modUC,
		publishUC: publishUC,
		scheduler: scheduler,
		admins:    admins,
	}
}

// Start starts the scheduler and consumes updates until the stream closes
func (s *TelegramServer) Start() error {
	s.scheduler.Start()

	updates := s.client.Updates()
	for update := range updates {
		s.handleUpdate(update)
	}
	return fmt.Errorf("update stream closed")
}

// Stop stops the scheduler and the update stream
func (s *TelegramServer) Stop() {
	s.scheduler.Stop()
	s.client.Stop()
}

// handleUpdate routes one update by shape
func (s *TelegramServer) handleUpdate(update tgbotapi.Update) {
	ctx := context.Background()

	switch {
	case update.CallbackQuery != nil:
		event := data.FromCallback(update.CallbackQuery)
		if err := s.modUC.HandleCallback(ctx, event); err != nil {
			fmt.Printf("[Server] Callback error: %v\n", err)
		}

	case update.Message != nil:
		msg := update.Message
		if msg.IsCommand() {
			s.handleCommand(ctx, msg)
			return
		}
		if err := s.modUC.HandleMessage(ctx, data.FromMessage(msg)); err != nil {
			fmt.Printf("[Server] Message error: %v\n", err)
		}
	}
}

// handleCommand handles admin commands. Commands from non-admins are ignored.
func (s *TelegramServer) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !s.admins.Contains(msg.From.ID) {
		return
	}

	switch msg.Command() {
	case "queue":
		count, err := s.publishUC.Backlog(ctx)
		if err != nil {
			fmt.Printf("[Server] Failed to read queue size: %v\n", err)
			_ = s.gateway.SendText(ctx, msg.Chat.ID, "Failed to read queue size")
			return
		}
		_ = s.gateway.SendText(ctx, msg.Chat.ID, fmt.Sprintf("Queue size: %d", count))

	case "post":
		count := 1
		if args := strings.TrimSpace(msg.CommandArguments()); args != "" {
			parsed, err := strconv.Atoi(args)
			if err != nil || parsed < 1 {
				_ = s.gateway.SendText(ctx, msg.Chat.ID, "Usage: /post [count]")
				return
			}
			count = parsed
		}

		published, err := s.scheduler.TriggerNow(ctx, count)
		if err != nil {
			fmt.Printf("[Server] Manual post error: %v\n", err)
		}
		_ = s.gateway.SendText(ctx, msg.Chat.ID, fmt.Sprintf("Published %d of %d", published, count))
	}
}
