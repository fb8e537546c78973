package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/joho/godotenv"
)

const (
	EnvDefaultMode  = "SCRIPTCHAT_DEFAULT_MODE"
	EnvLogUseCases  = "SCRIPTCHAT_LOG_USE_CASES"
	EnvLogLevel     = "SCRIPTCHAT_LOG_LEVEL"
	EnvReplyDelayMs = "SCRIPTCHAT_REPLY_DELAY_MS"
	EnvNoColor      = "SCRIPTCHAT_NO_COLOR"
	EnvFile         = "SCRIPTCHAT_ENV_FILE"

	defaultEnvFile = ".env"
	maxReplyDelay  = 10 * time.Second
)

// Config holds runtime settings for the CLI.
type Config struct {
	// DefaultMode preselects the mode for new chats. Empty means ask.
	DefaultMode domain.Mode
	LogUseCases bool
	LogLevel    slog.Level
	// ReplyDelay simulates the assistant typing before a reply appears.
	ReplyDelay time.Duration
	NoColor    bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LogLevel:   slog.LevelInfo,
		ReplyDelay: 0,
	}
}

// Load applies an optional .env file and then the environment over the
// defaults. Variables already set in the environment win over the file.
func Load() (Config, error) {
	path := defaultEnvFile
	if v, ok := os.LookupEnv(EnvFile); ok && v != "" {
		path = v
	}
	if err := loadEnvFile(path); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv(EnvDefaultMode)); v != "" {
		mode, err := domain.ParseMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDefaultMode, err)
		}
		cfg.DefaultMode = mode
	}
	cfg.LogUseCases = getEnvBool(EnvLogUseCases, cfg.LogUseCases)
	cfg.NoColor = getEnvBool(EnvNoColor, cfg.NoColor)
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if ms := getEnvInt(EnvReplyDelayMs, -1); ms >= 0 {
		cfg.ReplyDelay = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DefaultMode != "" && !c.DefaultMode.Valid() {
		return fmt.Errorf("%s: unknown mode %q", EnvDefaultMode, c.DefaultMode)
	}
	if c.ReplyDelay < 0 || c.ReplyDelay > maxReplyDelay {
		return fmt.Errorf("%s must be between 0 and %d", EnvReplyDelayMs, maxReplyDelay.Milliseconds())
	}
	return nil
}

// loadEnvFile is a no-op when path does not exist.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("checking env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
