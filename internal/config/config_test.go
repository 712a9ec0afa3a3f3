package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.Console.FollowOnStart, "fresh console follows by default")
	require.True(t, cfg.Console.Wrap)
	require.True(t, cfg.UI.ShowStatusBar)
	require.True(t, cfg.UI.ShowMenu)
	require.Equal(t, 4096, cfg.Source.ChunkSize)
	require.Equal(t, 150*time.Millisecond, cfg.Demo.Interval)
	require.NoError(t, Validate(cfg))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"negative padding", func(c *Config) { c.Console.Padding = -1 }, "console.padding"},
		{"zero chunk", func(c *Config) { c.Source.ChunkSize = 0 }, "source.chunk_size"},
		{"no shell", func(c *Config) { c.Source.Shell = "" }, "source.shell"},
		{"zero poll", func(c *Config) { c.Tail.Poll = 0 }, "tail.poll"},
		{"zero interval", func(c *Config) { c.Demo.Interval = 0 }, "demo.interval"},
		{"negative loops", func(c *Config) { c.Demo.Loops = -2 }, "demo.loops"},
		{"bad color", func(c *Config) { c.Theme.Error = "red" }, "theme.error"},
		{"zero ttl", func(c *Config) { c.State.RetainTTL = 0 }, "state.retain_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_HexColors(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = ThemeConfig{Muted: "#abc", Error: "#FF8787"}

	require.NoError(t, Validate(cfg))
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	require.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestWriteDefaultConfig_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := WriteDefaultConfig(filepath.Join(blocker, "config.yaml"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "creating config directory")
}
