// Package config provides configuration types and defaults for tailconsole.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/zjrosen/tailconsole/internal/log"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds all configuration options for tailconsole.
type Config struct {
	LogFile  string        `mapstructure:"log_file"`
	LogLevel string        `mapstructure:"log_level"` // debug (default), info, warn, error
	Console  ConsoleConfig `mapstructure:"console"`
	UI       UIConfig      `mapstructure:"ui"`
	Theme    ThemeConfig   `mapstructure:"theme"`
	Source   SourceConfig  `mapstructure:"source"`
	Tail     TailConfig    `mapstructure:"tail"`
	Demo     DemoConfig    `mapstructure:"demo"`
	State    StateConfig   `mapstructure:"state"`
}

// ConsoleConfig controls the output pane.
type ConsoleConfig struct {
	// FollowOnStart makes a fresh, empty console follow new output before
	// any scroll event has happened.
	FollowOnStart bool `mapstructure:"follow_on_start"`
	Wrap          bool `mapstructure:"wrap"`    // Soft-wrap long lines to the pane width
	Border        bool `mapstructure:"border"`  // Draw a rounded border around the pane
	Padding       int  `mapstructure:"padding"` // Blank rows above and below the content
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool `mapstructure:"show_status_bar"`
	ShowMenu      bool `mapstructure:"show_menu"`
}

// ThemeConfig overrides individual colors. Values are hex strings such as
// "#FF8787"; empty keeps the built-in color.
type ThemeConfig struct {
	Muted   string `mapstructure:"muted"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
	Warning string `mapstructure:"warning"`
}

// SourceConfig holds settings shared by all output producers.
type SourceConfig struct {
	ChunkSize int    `mapstructure:"chunk_size"` // Max bytes per fragment
	Shell     string `mapstructure:"shell"`      // Shell used by `run --shell`
}

// TailConfig holds settings for following a file.
type TailConfig struct {
	FromStart bool          `mapstructure:"from_start"`
	Poll      time.Duration `mapstructure:"poll"`
}

// DemoConfig holds settings for the demo producer.
type DemoConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Loops    int           `mapstructure:"loops"` // 0 repeats forever
}

// StateConfig controls how long a suspended session's state is retained.
type StateConfig struct {
	RetainTTL time.Duration `mapstructure:"retain_ttl"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		LogFile:  "debug.log",
		LogLevel: "debug",
		Console: ConsoleConfig{
			FollowOnStart: true,
			Wrap:          true,
			Border:        true,
			Padding:       0,
		},
		UI: UIConfig{
			ShowStatusBar: true,
			ShowMenu:      true,
		},
		Source: SourceConfig{
			ChunkSize: 4096,
			Shell:     "/bin/sh",
		},
		Tail: TailConfig{
			FromStart: false,
			Poll:      2 * time.Second,
		},
		Demo: DemoConfig{
			Interval: 150 * time.Millisecond,
			Loops:    0,
		},
		State: StateConfig{
			RetainTTL: 24 * time.Hour,
		},
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for name, c := range map[string]string{
		"theme.muted":   cfg.Theme.Muted,
		"theme.error":   cfg.Theme.Error,
		"theme.success": cfg.Theme.Success,
		"theme.warning": cfg.Theme.Warning,
	} {
		if c != "" && !hexColor.MatchString(c) {
			return fmt.Errorf("%s must be a hex color like \"#FF8787\", got %q", name, c)
		}
	}
	if cfg.Console.Padding < 0 {
		return fmt.Errorf("console.padding must not be negative, got %d", cfg.Console.Padding)
	}
	if cfg.Source.ChunkSize <= 0 {
		return fmt.Errorf("source.chunk_size must be positive, got %d", cfg.Source.ChunkSize)
	}
	if cfg.Source.Shell == "" {
		return fmt.Errorf("source.shell is required")
	}
	if cfg.Tail.Poll <= 0 {
		return fmt.Errorf("tail.poll must be positive, got %v", cfg.Tail.Poll)
	}
	if cfg.Demo.Interval <= 0 {
		return fmt.Errorf("demo.interval must be positive, got %v", cfg.Demo.Interval)
	}
	if cfg.Demo.Loops < 0 {
		return fmt.Errorf("demo.loops must not be negative, got %d", cfg.Demo.Loops)
	}
	if cfg.State.RetainTTL <= 0 {
		return fmt.Errorf("state.retain_ttl must be positive, got %v", cfg.State.RetainTTL)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# tailconsole configuration

# Debug log destination (only written with --debug or TAILCONSOLE_DEBUG=1)
log_file: debug.log
log_level: debug   # debug, info, warn, error

# Output pane
console:
  follow_on_start: true  # A fresh console follows new output
  wrap: true             # Soft-wrap long lines
  border: true           # Rounded border around the output
  padding: 0             # Blank rows above and below the output

# Chrome
ui:
  show_status_bar: true  # Toggle at runtime with 's'
  show_menu: true        # [Top] [Bottom] buttons

# Color overrides (hex), empty keeps the default
# theme:
#   muted: "#696969"
#   error: "#FF8787"
#   success: "#73F59F"
#   warning: "#FECA57"

# Output producers
source:
  chunk_size: 4096       # Max bytes per fragment
  shell: /bin/sh         # Used by 'tailconsole run --shell'

tail:
  from_start: false      # Show existing file content first
  poll: 2s               # Fallback re-check interval

demo:
  interval: 150ms
  loops: 0               # 0 repeats forever

# Console state kept while the program is suspended (ctrl+z)
state:
  retain_ttl: 24h
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
