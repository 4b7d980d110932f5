package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the adventure binary. Values come from an
// optional YAML file, then environment variables, then command-line flags.
type Config struct {
	DataDir      string `yaml:"data_dir"`
	DefaultGame  string `yaml:"default_game"`
	SynonymsFile string `yaml:"synonyms_file"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	LogFile      string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:      "data",
		DefaultGame:  "Tiny",
		SynonymsFile: "Synonyms.dat",
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// Load builds the configuration. An empty path skips the YAML file; a path
// that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.DataDir = getEnv("ADVENTURE_DATA_DIR", cfg.DataDir)
	cfg.DefaultGame = getEnv("ADVENTURE_GAME", cfg.DefaultGame)
	cfg.LogLevel = getEnv("ADVENTURE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("ADVENTURE_LOG_FILE", cfg.LogFile)

	switch strings.ToLower(cfg.LogFormat) {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unknown log_format %q (want text or json)", cfg.LogFormat)
	}
	return cfg, nil
}

// SynonymsPath returns the synonym file location. Relative names are taken
// from the data directory.
func (c *Config) SynonymsPath() string {
	if c.SynonymsFile == "" || filepath.IsAbs(c.SynonymsFile) {
		return c.SynonymsFile
	}
	return filepath.Join(c.DataDir, c.SynonymsFile)
}

// Level parses LogLevel; unknown values mean info.
func (c *Config) Level() slog.Level {
	return parseLogLevel(c.LogLevel)
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
