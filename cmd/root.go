package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tailconsole/internal/app"
	"github.com/zjrosen/tailconsole/internal/config"
	"github.com/zjrosen/tailconsole/internal/log"
	"github.com/zjrosen/tailconsole/internal/source"
	"github.com/zjrosen/tailconsole/internal/ui/styles"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply does not race with Bubble Tea's input reader.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	envPrefix         = "TAILCONSOLE"
	localConfigPath   = ".tailconsole/config.yaml"
	userConfigDirName = "tailconsole"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	noFollow  bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tailconsole",
	Short: "A scrolling terminal console for streamed output",
	Long: `tailconsole shows streamed text output in a scrollable terminal pane.

It follows new output as it arrives and stops following when you scroll up,
picking up again once you return to the bottom. With no subcommand it reads
standard input when that is a pipe, and runs the demo otherwise.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/tailconsole/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also enabled by TAILCONSOLE_DEBUG=1)")
	rootCmd.PersistentFlags().BoolVar(&noFollow, "no-follow", false,
		"start without following new output")
}

func initConfig() {
	setDefaults(viper.GetViper(), config.Defaults())

	// TAILCONSOLE_CONSOLE_WRAP=false overrides console.wrap
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .tailconsole/config.yaml (current directory)
		// 2. ~/.config/tailconsole/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", userConfigDirName))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config anywhere, write the commented default for the user.
			if path, ok := userConfigPath(); ok {
				if writeErr := config.WriteDefaultConfig(path); writeErr == nil {
					viper.SetConfigFile(path)
					_ = viper.ReadInConfig()
				}
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setDefaults registers every config key so that environment overrides and
// Unmarshal see keys the config file does not mention.
func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("console.follow_on_start", d.Console.FollowOnStart)
	v.SetDefault("console.wrap", d.Console.Wrap)
	v.SetDefault("console.border", d.Console.Border)
	v.SetDefault("console.padding", d.Console.Padding)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.show_menu", d.UI.ShowMenu)
	v.SetDefault("theme.muted", d.Theme.Muted)
	v.SetDefault("theme.error", d.Theme.Error)
	v.SetDefault("theme.success", d.Theme.Success)
	v.SetDefault("theme.warning", d.Theme.Warning)
	v.SetDefault("source.chunk_size", d.Source.ChunkSize)
	v.SetDefault("source.shell", d.Source.Shell)
	v.SetDefault("tail.from_start", d.Tail.FromStart)
	v.SetDefault("tail.poll", d.Tail.Poll)
	v.SetDefault("demo.interval", d.Demo.Interval)
	v.SetDefault("demo.loops", d.Demo.Loops)
	v.SetDefault("state.retain_ttl", d.State.RetainTTL)
}

func userConfigPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", userConfigDirName, "config.yaml"), true
}

func runRoot(_ *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return runConsole(&source.Reader{R: os.Stdin, ChunkSize: cfg.Source.ChunkSize}, tea.WithInputTTY())
	}
	return runConsole(&source.Demo{Interval: cfg.Demo.Interval, Loops: cfg.Demo.Loops})
}

// debugEnabled reports whether the debug log was requested by flag or
// environment.
func debugEnabled() bool {
	return debugFlag || os.Getenv(envPrefix+"_DEBUG") != ""
}

// runConsole runs the TUI until the user quits. The producer is stopped
// when the program exits.
func runConsole(src source.Source, opts ...tea.ProgramOption) error {
	if noFollow {
		cfg.Console.FollowOnStart = false
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugEnabled() {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "tailconsole")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		level, _ := log.ParseLevel(cfg.LogLevel)
		log.SetMinLevel(level)
		log.Info(log.CatConfig, "tailconsole starting",
			"version", version,
			"config", viper.ConfigFileUsed(),
			"source", src.Name())
	}

	styles.ApplyTheme(cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success, cfg.Theme.Warning)
	zone.NewGlobal()

	model := app.New(cfg, src)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	model.Close()

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
