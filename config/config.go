package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"upgradeprompt/locale"
)

// Config carries the settings an embedding application provides for the
// update prompt.
type Config struct {
	// AppName fills the {{appName}} placeholder when the caller renders the
	// body template.
	AppName string
	// Language, when non-empty, pins the prompt language and skips detection.
	Language string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment itself.
	}

	cfg := &Config{
		AppName:  os.Getenv("APP_NAME"),
		Language: os.Getenv("PROMPT_LANGUAGE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all rules to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return fmt.Errorf("config: APP_NAME is required and cannot be empty")
	}

	raw := strings.TrimSpace(c.Language)
	if raw == "" {
		c.Language = ""
		return nil
	}

	normalized := locale.Normalize(raw)
	if normalized == "" {
		return fmt.Errorf("config: PROMPT_LANGUAGE (%q) is not a language code", raw)
	}
	c.Language = normalized

	return nil
}
