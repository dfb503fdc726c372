package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"CLOUDPLAZA_CONFIG",
		"CLOUDPLAZA_LOG_LEVEL",
		"CLOUDPLAZA_LOG_FILE",
		"CLOUDPLAZA_CONTENT",
		"CLOUDPLAZA_ALT_SCREEN",
		"CLOUDPLAZA_MOUSE",
		"CLOUDPLAZA_OUTPUT",
	} {
		t.Setenv(v, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cloudplaza.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDPLAZA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Content.Path)
	assert.True(t, cfg.Present.AltScreen)
	assert.True(t, cfg.Present.Mouse)
	assert.Equal(t, "index.html", cfg.Export.Output)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
log:
  level: debug
  file: deck.log
content:
  path: deck.yaml
present:
  mouse: false
export:
  output: out/site.html
`)
	t.Setenv("CLOUDPLAZA_CONFIG", path)
	t.Setenv("CLOUDPLAZA_LOG_LEVEL", "warn")
	t.Setenv("CLOUDPLAZA_MOUSE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "env beats file")
	assert.Equal(t, "deck.log", cfg.Log.File)
	assert.Equal(t, "deck.yaml", cfg.Content.Path)
	assert.True(t, cfg.Present.AltScreen, "unset keys keep defaults")
	assert.True(t, cfg.Present.Mouse)
	assert.Equal(t, "out/site.html", cfg.Export.Output)
	assert.Equal(t, log.WarnLevel, cfg.LogLevel())
}

func TestLoad_InvalidBoolEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDPLAZA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("CLOUDPLAZA_ALT_SCREEN", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Present.AltScreen)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDPLAZA_CONFIG", writeFile(t, "log: [unclosed"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadFromFile_Missing(t *testing.T) {
	clearEnv(t)
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFile_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLOUDPLAZA_CONTENT", "env-deck.yaml")
	cfg, err := LoadFromFile(writeFile(t, "present:\n  alt_screen: false\ncontent:\n  path: file-deck.yaml\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Present.AltScreen)
	assert.Equal(t, "env-deck.yaml", cfg.Content.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"upper case level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
		{"blank output", func(c *Config) { c.Export.Output = "  " }, "export.output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := newDefaults()
	cfg.Log.Level = "chatty"
	cfg.Export.Output = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "export.output")
}
