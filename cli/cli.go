// Package cli provides command-line helpers for the Bitmask shell.
// They inspect or stop the daemon without launching the GUI.
package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/yllada/bitmask-shell/common"
	"github.com/yllada/bitmask-shell/config"
	"github.com/yllada/bitmask-shell/daemon"
)

// CLI represents the command-line interface.
type CLI struct {
	supervisor *daemon.Supervisor
	tokenPath  string
	out        io.Writer
}

// New creates a CLI bound to the daemon files under cfg's path prefix.
func New(cfg *config.Config) (*CLI, error) {
	prefix, err := cfg.ResolvePathPrefix()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path prefix: %w", err)
	}

	return &CLI{
		supervisor: daemon.NewSupervisor(cfg.DaemonCommand, cfg.DaemonArgs, common.LeapPath(prefix, common.PIDFileName)),
		tokenPath:  common.LeapPath(prefix, common.AuthTokenFileName),
		out:        os.Stdout,
	}, nil
}

// Status shows the daemon pid, whether it is alive and whether the
// auth token is present.
func (c *CLI) Status() error {
	pid, ok, err := c.supervisor.PID()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "Daemon is not running (no pid file).")
		return nil
	}

	_, alive := c.supervisor.Alive()

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tALIVE\tTOKEN\tPID FILE")
	fmt.Fprintln(w, "---\t-----\t-----\t--------")
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
		pid, yesNo(alive), yesNo(common.FileExists(c.tokenPath)), c.supervisor.PIDPath())
	return w.Flush()
}

// StopDaemon sends SIGTERM to the daemon named by the pid file.
func (c *CLI) StopDaemon() error {
	pid, ok, err := c.supervisor.PID()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "Daemon is not running.")
		return nil
	}

	fmt.Fprintf(c.out, "Stopping bitmaskd (pid %d)...\n", pid)
	if err := c.supervisor.Stop(); err != nil {
		return fmt.Errorf("failed to stop daemon: %w", err)
	}
	if err := daemon.ClearToken(c.tokenPath); err != nil {
		common.LogWarn("Could not remove auth token: %v", err)
	}
	fmt.Fprintln(c.out, "✓ Termination requested")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Bitmask - desktop shell for the Bitmask daemon

Usage:
  bitmask-shell [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --status          Show daemon status
  --stop-daemon     Terminate a running daemon
  --help            Show this help message

Environment:
  DEBUG             Any value other than "", "0" or "false" enables debug logging

Notes:
  - Run without options to start the daemon and open the GUI
  - Settings are read from ~/.config/bitmask-shell/config.yaml`)
}
