package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"confirmbot/internal/domain/culture"
)

type Config struct {
	Token          string
	GuildID        string
	DatabaseURL    string
	MigrationsPath string
	DialogsPath    string
	DefaultLocale  string
	LogLevel       zapcore.Level
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: envOr("MIGRATIONS_PATH", "migrations"),
		DialogsPath:    envOr("DIALOGS_PATH", "dialogs.toml"),
		DefaultLocale:  envOr("DEFAULT_LOCALE", culture.English),
	}

	if err := cfg.validate(os.Getenv("LOG_LEVEL")); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// UsesDatabase reports whether conversation state goes to PostgreSQL rather
// than process memory.
func (c *Config) UsesDatabase() bool { return c.DatabaseURL != "" }

func (c *Config) validate(logLevel string) error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	locale := culture.Nearest(c.DefaultLocale)
	if locale == "" {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not a supported locale (%s)",
			c.DefaultLocale, strings.Join(culture.Locales(), ", "))
	}
	c.DefaultLocale = locale

	c.LogLevel = zapcore.InfoLevel
	if strings.TrimSpace(logLevel) != "" {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
		}
		c.LogLevel = level
	}

	return nil
}
