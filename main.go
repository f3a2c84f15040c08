// Package main provides the entry point for the Bitmask desktop shell.
// The shell starts the bitmaskd daemon, waits for its auth token, and
// presents the daemon's local web UI in a window with a tray icon that
// follows the VPN status. Closing the shell terminates the daemon.
//
// Usage:
//
//	bitmask-shell [options]
//
// Environment:
//
//	DEBUG enables debug logging. bitmaskd must be installed and on PATH
//	unless daemon_command in the config file names it explicitly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/yllada/bitmask-shell/cli"
	"github.com/yllada/bitmask-shell/common"
	"github.com/yllada/bitmask-shell/config"
	"github.com/yllada/bitmask-shell/daemon"
	"github.com/yllada/bitmask-shell/events"
	"github.com/yllada/bitmask-shell/lifecycle"
	"github.com/yllada/bitmask-shell/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	showStatus = flag.Bool("status", false, "Show daemon status")
	stopDaemon = flag.Bool("stop-daemon", false, "Terminate a running daemon")
)

func init() {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s shell v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose || common.DebugEnabled() {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:       logLevel,
		EnableFile:  true,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	if *showStatus || *stopDaemon {
		os.Exit(runCLI(cfg))
	}

	os.Exit(runGUI(cfg))
}

// runCLI handles the command-line helpers and returns the exit status.
func runCLI(cfg *config.Config) int {
	defer common.CloseLogger()

	cliApp, err := cli.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *stopDaemon {
		err = cliApp.StopDaemon()
	} else {
		err = cliApp.Status()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runGUI starts the daemon and the desktop shell and returns the exit status.
func runGUI(cfg *config.Config) int {
	defer common.CloseLogger()

	prefix, err := cfg.ResolvePathPrefix()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	lock, err := lifecycle.AcquireInstanceLock(common.LeapPath(prefix, common.LockFileName))
	if err != nil {
		if errors.Is(err, common.ErrAlreadyRunning) {
			fmt.Fprintf(os.Stderr, "ERROR: %s is already running\n", common.AppName)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		return 1
	}
	defer lock.Unlock()

	supervisor := daemon.NewSupervisor(cfg.DaemonCommand, cfg.DaemonArgs, common.LeapPath(prefix, common.PIDFileName))

	var bus events.Bus
	dbusBus, err := events.ConnectSessionBus()
	if err != nil {
		common.LogWarn("VPN status events unavailable, tray will stay at %s: %v", common.VPNOff, err)
		bus = events.NewMemoryBus()
	} else {
		defer dbusBus.Close()
		bus = dbusBus
	}

	controller := lifecycle.New(lifecycle.Options{
		BaseURL:           cfg.BaseURL,
		LinkedAppURL:      cfg.LinkedAppURL,
		TokenPath:         common.LeapPath(prefix, common.AuthTokenFileName),
		TokenAttempts:     cfg.TokenAttempts,
		TokenInterval:     cfg.TokenInterval,
		MinimizeToTray:    cfg.MinimizeToTray,
		ShowNotifications: cfg.ShowNotifications,
	}, ui.NewPlatform(cfg.Theme), supervisor, bus)

	stop := controller.WatchSignals()
	defer stop()

	common.LogInfo("Starting %s shell v%s", common.AppName, appVersion)
	exitCode := controller.Run(context.Background())
	if exitCode != 0 {
		common.LogWarn("Shell exited with code %d", exitCode)
	}
	return exitCode
}
