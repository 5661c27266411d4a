// internal/config/config.go
//
// Runtime configuration for wordhub.
//
// Sources, lowest to highest precedence:
//   1. Built-in defaults (Default).
//   2. Optional TOML file ($XDG_CONFIG_HOME/wordhub/config.toml).
//   3. Environment variables (a .env file is loaded by main via godotenv).
//   4. Command-line flags (applied by main).
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//   MAX_ATTEMPTS=6
//   DAILY=true
//   DAILY_SALT=local_dev_salt
//   LOG_LEVEL=info
//   LOG_FILE=/path/to/wordhub.log

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the resolved configuration.
type Config struct {
	WordsFile   string `toml:"words_file"`
	WordLength  int    `toml:"word_length"`
	MaxAttempts int    `toml:"max_attempts"`
	Daily       bool   `toml:"daily"`
	DailySalt   string `toml:"daily_salt"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WordLength:  6,
		MaxAttempts: 6,
		DailySalt:   "local_dev_salt",
		LogLevel:    "info",
		LogFile:     DefaultLogPath(),
	}
}

// Load resolves defaults, the TOML file at path and the environment.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.WordsFile = getEnv("WORDS_FILE", cfg.WordsFile)
	cfg.DailySalt = getEnv("DAILY_SALT", cfg.DailySalt)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	if v := os.Getenv("WORD_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WORD_LENGTH %q: %w", v, err)
		}
		cfg.WordLength = n
	}
	if v := os.Getenv("MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_ATTEMPTS %q: %w", v, err)
		}
		cfg.MaxAttempts = n
	}
	if v := os.Getenv("DAILY"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid DAILY %q: %w", v, err)
		}
		cfg.Daily = b
	}
	return nil
}

// Validate checks numeric bounds.
func (c Config) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("word_length must be at least 1, got %d", c.WordLength)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
