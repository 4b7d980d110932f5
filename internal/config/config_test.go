package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ADVENTURE_DATA_DIR", "ADVENTURE_GAME", "ADVENTURE_LOG_LEVEL", "ADVENTURE_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adventure.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "Tiny", cfg.DefaultGame)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
data_dir: /srv/adventure
default_game: Crowther
log_level: debug
log_format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/adventure", cfg.DataDir)
	assert.Equal(t, "Crowther", cfg.DefaultGame)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "Synonyms.dat", cfg.SynonymsFile, "unset keys keep defaults")
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "data_dir: from-file\ndefault_game: FileGame\n")
	t.Setenv("ADVENTURE_DATA_DIR", "from-env")
	t.Setenv("ADVENTURE_LOG_FILE", "/tmp/adventure.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DataDir)
	assert.Equal(t, "FileGame", cfg.DefaultGame)
	assert.Equal(t, "/tmp/adventure.log", cfg.LogFile)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "data_dir: [unterminated\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "log_format: xml\n"))
	assert.ErrorContains(t, err, "log_format")
}

func TestSynonymsPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("data", "Synonyms.dat"), cfg.SynonymsPath())

	cfg.SynonymsFile = "/etc/adventure/syn.dat"
	assert.Equal(t, "/etc/adventure/syn.dat", cfg.SynonymsPath())

	cfg.SynonymsFile = ""
	assert.Empty(t, cfg.SynonymsPath())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}
