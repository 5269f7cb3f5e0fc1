package conf

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/anthropics/telegram-relay-bot/internal/service"
)

// Config represents application configuration
type Config struct {
	// Telegram configuration
	Telegram TelegramConfig

	// Posting schedule configuration
	Schedule ScheduleConfig

	// Queue configuration
	Queue QueueConfig

	// Moderation configuration
	Moderation ModerationConfig

	// Pre-screen configuration (optional)
	Screen ScreenConfig

	// Debug mode routes publishes to the owner instead of the public chat
	Debug bool
}

// TelegramConfig contains Telegram configuration
type TelegramConfig struct {
	BotToken     string
	PublicChatID int64
}

// ScheduleConfig contains posting schedule values
type ScheduleConfig struct {
	MinHour               int
	MaxHour               int
	MinPostCount          int
	MaxPostCount          int
	PostIntervalMinutes   int
	PostOffsetMinutes     int
	BasePostChance        float64
	BasePostChanceBacklog int
	TimezoneOffsetHours   int
}

// QueueConfig contains queue storage configuration
type QueueConfig struct {
	DBPath string
}

// ModerationConfig contains moderation configuration
type ModerationConfig struct {
	BlacklistedChatIDs []int64
}

// ScreenConfig contains pre-screen configuration
type ScreenConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Queue DB path
	queueDBPath := os.Getenv("QUEUE_DB_PATH")
	if queueDBPath == "" {
		homeDir, _ := os.UserHomeDir()
		queueDBPath = filepath.Join(homeDir, ".telegram-relay", "queue.db")
	}

	return &Config{
		Telegram: TelegramConfig{
			BotToken:     os.Getenv("BOT_TOKEN"),
			PublicChatID: envInt64("PUBLIC_CHAT_ID", 0),
		},
		Schedule: ScheduleConfig{
			MinHour:               envInt("MIN_HOUR", 9),
			MaxHour:               envInt("MAX_HOUR", 23),
			MinPostCount:          envInt("MIN_POST_COUNT", 1),
			MaxPostCount:          envInt("MAX_POST_COUNT", 3),
			PostIntervalMinutes:   envInt("POST_INTERVAL_MINUTES", 60),
			PostOffsetMinutes:     envInt("POST_INTERVAL_OFFSET_MINUTES", 30),
			BasePostChance:        envFloat("BASE_POST_CHANCE", 0.25),
			BasePostChanceBacklog: envInt("BASE_POST_CHANCE_BACKLOG", 25),
			TimezoneOffsetHours:   envInt("TIMEZONE_OFFSET_HOURS", 0),
		},
		Queue: QueueConfig{
			DBPath: queueDBPath,
		},
		Moderation: ModerationConfig{
			BlacklistedChatIDs: parseIDList(os.Getenv("BLACKLISTED_CHAT_IDS")),
		},
		Screen: ScreenConfig{
			APIKey:  os.Getenv("SCREEN_API_KEY"),
			Model:   os.Getenv("SCREEN_MODEL"),
			BaseURL: os.Getenv("SCREEN_BASE_URL"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}
}

// ToScheduleConfig converts to the scheduler configuration
func (c *ScheduleConfig) ToScheduleConfig() service.ScheduleConfig {
	return service.ScheduleConfig{
		MinHour:               c.MinHour,
		MaxHour:               c.MaxHour,
		MinPostCount:          c.MinPostCount,
		MaxPostCount:          c.MaxPostCount,
		PostInterval:          time.Duration(c.PostIntervalMinutes) * time.Minute,
		PostIntervalOffset:    time.Duration(c.PostOffsetMinutes) * time.Minute,
		BasePostChance:        c.BasePostChance,
		BasePostChanceBacklog: c.BasePostChanceBacklog,
		TimezoneOffsetHours:   c.TimezoneOffsetHours,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return &ConfigError{Field: "BOT_TOKEN", Message: "required"}
	}
	if c.Telegram.PublicChatID == 0 {
		return &ConfigError{Field: "PUBLIC_CHAT_ID", Message: "required"}
	}
	if c.Schedule.MinPostCount < 1 || c.Schedule.MaxPostCount < c.Schedule.MinPostCount {
		return &ConfigError{Field: "MIN_POST_COUNT/MAX_POST_COUNT", Message: "invalid range"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// parseIDList parses a comma-separated list of chat IDs
func parseIDList(val string) []int64 {
	if val == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
