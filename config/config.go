// Package config loads runtime settings from an optional .env file, an
// optional INI file and the environment, in that order of precedence
// (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Defaults.
const (
	DefaultSaveFile   = "frog_adventure_save.json"
	DefaultConfigFile = "frogquest.ini"
	DefaultModel      = "gpt-4o-mini"
	DefaultAITimeout  = 60 * time.Second
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config is the resolved runtime configuration.
type Config struct {
	SaveFile string `env:"FROG_SAVE_FILE"`
	Seed     int64  `env:"FROG_SEED"`

	APIKey    string        `env:"OPENAI_API_KEY"`
	Model     string        `env:"FROG_AI_MODEL"`
	AITimeout time.Duration `env:"FROG_AI_TIMEOUT"`

	LogLevelName string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	LogFile      string `env:"LOG_FILE"`

	LogLevel slog.Level `env:"-"`
}

// AIEnabled reports whether generative frogs can be requested.
func (c *Config) AIEnabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Load resolves configuration from .env in the working directory, the INI
// file named by FROG_CONFIG (or frogquest.ini if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env", os.Getenv("FROG_CONFIG"))
}

// LoadFrom is Load with explicit file locations. A missing envFile is
// ignored. An empty iniPath falls back to DefaultConfigFile, which may be
// absent; an explicit iniPath must exist.
func LoadFrom(envFile, iniPath string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := defaults()

	required := iniPath != ""
	if !required {
		iniPath = DefaultConfigFile
	}
	if err := applyINI(cfg, iniPath, required); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return finish(cfg)
}

func defaults() *Config {
	return &Config{
		SaveFile:     DefaultSaveFile,
		Model:        DefaultModel,
		AITimeout:    DefaultAITimeout,
		LogLevelName: DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

func applyINI(cfg *Config, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	game := f.Section("game")
	cfg.SaveFile = game.Key("save_file").MustString(cfg.SaveFile)
	cfg.Seed = game.Key("seed").MustInt64(cfg.Seed)

	ai := f.Section("ai")
	cfg.Model = ai.Key("model").MustString(cfg.Model)
	cfg.AITimeout = ai.Key("timeout").MustDuration(cfg.AITimeout)

	logSec := f.Section("log")
	cfg.LogLevelName = logSec.Key("level").MustString(cfg.LogLevelName)
	cfg.LogFormat = logSec.Key("format").MustString(cfg.LogFormat)
	cfg.LogFile = logSec.Key("file").MustString(cfg.LogFile)
	return nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.LogFormat)
	}
	if cfg.SaveFile == "" {
		return nil, errors.New("save file path is empty")
	}
	if cfg.AITimeout <= 0 {
		return nil, fmt.Errorf("AI timeout must be positive, got %s", cfg.AITimeout)
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
