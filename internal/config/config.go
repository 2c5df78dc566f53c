package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

type Config struct {
	ChatPlatform       string
	DiscordToken       string
	CommandPrefix      string
	SlackBotToken      string
	SlackSigningSecret string
	UCsAPIURL          string
	CheckInterval      time.Duration
	DatabasePath       string
	Port               string
}

func Load() *Config {
	return &Config{
		ChatPlatform:       strings.ToLower(getEnv("CHAT_PLATFORM", PlatformDiscord)),
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		CommandPrefix:      getEnv("COMMAND_PREFIX", "+"),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		UCsAPIURL:          getEnv("UCS_API_URL", "https://mei.pedropereira.xyz/api/ucs"),
		CheckInterval:      getEnvMinutes("CHECK_INTERVAL_MINUTES", domain.DefaultCheckInterval),
		DatabasePath:       getEnv("DB_PATH", "subscriptions.db"),
		Port:               getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvMinutes reads a positive number of minutes, falling back to
// defaultValue when the variable is unset or invalid.
func getEnvMinutes(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return time.Duration(minutes) * time.Minute
}
