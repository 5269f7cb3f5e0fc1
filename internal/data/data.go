package data

import (
	"math/rand"

	"github.com/anthropics/telegram-relay-bot/internal/biz/repo"
	"github.com/anthropics/telegram-relay-bot/screener"
	"github.com/anthropics/telegram-relay-bot/telegram"
)

// Repositories contains all repositories
type Repositories struct {
	Queue   repo.QueueRepo
	Gateway repo.GatewayRepo
	Screen  repo.ScreenRepo
}

// NewRepositories creates all repositories
func NewRepositories(
	telegramClient *telegram.Client,
	screenClient *screener.Client,
	queueDBPath string,
	rng *rand.Rand,
) (*Repositories, error) {
	queueRepo, err := NewQueueRepo(queueDBPath, rng)
	if err != nil {
		return nil, err
	}

	// screenClient may be nil; pre-screening is then disabled
	return &Repositories{
		Queue:   queueRepo,
		Gateway: NewTelegramRepo(telegramClient),
		Screen:  NewScreenRepo(screenClient),
	}, nil
}
