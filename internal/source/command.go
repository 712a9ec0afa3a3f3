package source

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoCommand is returned when a Command has nothing to run.
var ErrNoCommand = errors.New("no command given")

// Command runs one child process and forwards its stdout and stderr.
// Only the launch and the exit status are handled here; signals, restarts
// and process groups are left to the caller.
type Command struct {
	Args []string // program and arguments
	Dir  string   // working directory, "" for the current one
	Env  []string // extra KEY=VALUE pairs appended to the environment
}

// ShellCommand runs line through shell -c.
func ShellCommand(shell, line string) *Command {
	return &Command{Args: []string{shell, "-c", line}}
}

// Name implements Source.
func (c *Command) Name() string {
	if len(c.Args) == 0 {
		return "command"
	}
	return strings.Join(c.Args, " ")
}

// Run implements Source. Both streams share w, which exec serializes
// onto a single pipe, so their interleaving matches what the child wrote.
func (c *Command) Run(ctx context.Context, w *ForwardingWriter) error {
	if len(c.Args) == 0 {
		return ErrNoCommand
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...) //nolint:gosec // G204: running the user's command is the point
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.Args[0], err)
	}
	err := cmd.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
