package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/oncall-router/internal/domain"
)

type Config struct {
	Port          string
	PublicBaseURL string
	LogLevel      string
	Timezone      string

	TwilioAccountSID      string
	TwilioAuthToken       string
	TwilioFromNumber      string
	TwilioValidateRequest bool
	CallControlURL        string
	StatusCallbackURL     string
	CallTimeout           time.Duration
	CallsPerSecond        float64

	RosterFile   string
	DatabasePath string

	SlackBotToken  string
	SlackChannelID string
	AnnounceTime   string
}

func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Timezone:      getEnv("TZ_NAME", "UTC"),

		TwilioAccountSID:      getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:       getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber:      getEnv("TWILIO_FROM_NUMBER", ""),
		TwilioValidateRequest: getEnvBool("TWILIO_VALIDATE_SIGNATURE", false),
		CallControlURL:        getEnv("CALL_CONTROL_URL", domain.DefaultCallControlURL),
		StatusCallbackURL:     getEnv("STATUS_CALLBACK_URL", ""),
		CallTimeout:           getEnvDuration("CALL_TIMEOUT", 30*time.Second),
		CallsPerSecond:        getEnvFloat("CALLS_PER_SECOND", 1),

		RosterFile:   getEnv("ROSTER_FILE", ""),
		DatabasePath: getEnv("DATABASE_PATH", ""),

		SlackBotToken:  getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		AnnounceTime:   getEnv("ANNOUNCE_TIME", "09:00"),
	}

	if cfg.StatusCallbackURL == "" && cfg.PublicBaseURL != "" {
		cfg.StatusCallbackURL = cfg.PublicBaseURL + "/call-status"
	}

	return cfg
}

// HasProviderCredentials reports whether everything needed to place calls is set.
func (c *Config) HasProviderCredentials() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// AnnouncerEnabled reports whether the Slack announcer has a token and a channel.
func (c *Config) AnnouncerEnabled() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

// Location returns the configured timezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
