package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/luminahr/luminahr-go/luminahr"
)

type Config struct {
	Backend struct {
		BaseURL    string `toml:"base_url"`
		Timeout    time.Duration
		StrTimeout string `toml:"timeout"`
	}
	Session struct {
		File string `toml:"file"`
	}
	Logging struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	}
}

// GetConfig loads the CLI config from path, or from
// $HOME/.config/luminactl/config.toml when path is empty. A missing
// file is not an error; defaults and environment variables apply.
func GetConfig(path string, logger *slog.Logger) (*Config, error) {
	cfg := defaults()

	resolved := path
	if resolved == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			resolved = filepath.Join(home, ".config", "luminactl", "config.toml")
		}
	}

	if resolved != "" {
		data, err := os.ReadFile(resolved)
		switch {
		case err == nil:
			if _, tomlErr := toml.Decode(string(data), cfg); tomlErr != nil {
				logger.Error("Error decode config.toml file", slog.String("error", tomlErr.Error()))
				return nil, tomlErr
			}
			logger.Info("Config is loaded", slog.String("path", resolved))
		case os.IsNotExist(err) && path == "":
			// Default location, nothing there: run on defaults.
		default:
			logger.Error("Error read config.toml file", slog.String("error", err.Error()))
			return nil, err
		}
	}

	if cfg.Backend.StrTimeout != "" {
		timeout, err := time.ParseDuration(cfg.Backend.StrTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Backend.Timeout = timeout
	}

	if env := luminahr.ResolveBaseURL(); env != "" {
		cfg.Backend.BaseURL = env
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend base_url is required (config file or VITE_BACKEND_URL)")
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Backend.Timeout = 30 * time.Second
	cfg.Session.File = defaultSessionFile()
	cfg.Logging.File = "luminactl.log"
	cfg.Logging.Level = "info"
	return cfg
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".config", "luminactl", "session.json")
}

// LogLevel maps the configured level name onto slog's levels.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
