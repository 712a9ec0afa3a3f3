package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tailconsole/internal/source"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- COMMAND [ARGS...]",
	Short: "Run a command and show its output",
	Long: `Run a command and show its combined stdout and stderr.

With --shell the arguments are joined into one line and run through the
configured shell (source.shell), so pipes and globs work:

  tailconsole run --shell -- 'make test 2>&1 | grep -v DEBUG'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

var (
	runShell bool
	runDir   string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runShell, "shell", "s", false, "run the command line through the shell")
	runCmd.Flags().StringVar(&runDir, "dir", "", "working directory for the command")
	runCmd.Flags().String("shell-path", "", "shell used with --shell (overrides source.shell)")

	_ = viper.BindPFlag("source.shell", runCmd.Flags().Lookup("shell-path"))
}

func runRun(_ *cobra.Command, args []string) error {
	return runConsole(commandFor(args, runShell, cfg.Source.Shell, runDir))
}

// commandFor builds the producer for `run`.
func commandFor(args []string, shell bool, shellPath, dir string) *source.Command {
	var c *source.Command
	if shell {
		c = source.ShellCommand(shellPath, strings.Join(args, " "))
	} else {
		c = &source.Command{Args: args}
	}
	c.Dir = dir
	return c
}
