package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anthropics/telegram-relay-bot/internal/biz/domain"
	"github.com/anthropics/telegram-relay-bot/internal/biz/usecase"
	"github.com/anthropics/telegram-relay-bot/internal/conf"
	"github.com/anthropics/telegram-relay-bot/internal/data"
	"github.com/anthropics/telegram-relay-bot/internal/server"
	"github.com/anthropics/telegram-relay-bot/internal/service"
	"github.com/anthropics/telegram-relay-bot/screener"
	"github.com/anthropics/telegram-relay-bot/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	telegramClient, err := telegram.NewClient(config.Telegram.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram client: %v", err)
	}

	// Pre-screen is optional; no API key disables it
	var screenClient *screener.Client
	if config.Screen.APIKey != "" {
		screenClient = screener.NewClient(config.Screen.APIKey, config.Screen.Model, config.Screen.BaseURL)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	repos, err := data.NewRepositories(telegramClient, screenClient, config.Queue.DBPath, rng)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Queue.Close()

	// The administrator set is loaded once; the process must be restarted
	// to pick up admin changes
	ctx := context.Background()
	chatAdmins, err := repos.Gateway.ListAdministrators(ctx, config.Telegram.PublicChatID)
	if err != nil {
		log.Fatalf("Failed to list chat administrators: %v", err)
	}
	admins, err := domain.NewAdminSet(chatAdmins)
	if err != nil {
		log.Fatalf("Failed to build administrator set: %v", err)
	}
	fmt.Printf("[Main] Loaded %d administrators, owner %d\n", len(chatAdmins), admins.OwnerID)

	screenUC := usecase.NewScreenUsecase(repos.Screen)
	modUC := usecase.NewModerationUsecase(
		repos.Queue,
		repos.Gateway,
		screenUC,
		admins,
		config.Moderation.BlacklistedChatIDs,
	)
	publishUC := usecase.NewPublishUsecase(
		repos.Queue,
		repos.Gateway,
		config.Telegram.PublicChatID,
		admins.OwnerID,
		config.Debug,
	)
	scheduler := service.NewPostScheduler(publishUC, config.Schedule.ToScheduleConfig())

	srv := server.NewTelegramServer(telegramClient, repos.Gateway, modUC, publishUC, scheduler, admins)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		srv.Stop()
		repos.Queue.Close()
		os.Exit(0)
	}()

	fmt.Println("Starting Telegram relay bot...")
	if err := srv.Start(); err != nil {
		// A dead update stream is not recoverable; the supervisor restarts us
		log.Fatalf("Server error: %v", err)
	}
}
