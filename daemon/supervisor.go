package daemon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/yllada/bitmask-shell/common"
)

// Signaler delivers a signal to a process id.
type Signaler interface {
	Signal(pid int, sig syscall.Signal) error
}

// Supervisor owns the bitmaskd child process.
// Stop is not guarded against repeated calls; callers serialize it.
type Supervisor struct {
	command  string
	args     []string
	pidPath  string
	signaler Signaler

	mu     sync.Mutex
	cmd    *exec.Cmd
	exited chan struct{}
}

// NewSupervisor creates a supervisor for command. pidPath is where the
// daemon records its own process id.
func NewSupervisor(command string, args []string, pidPath string) *Supervisor {
	return &Supervisor{
		command:  command,
		args:     args,
		pidPath:  pidPath,
		signaler: osSignaler{},
	}
}

// SetSignaler replaces the signal delivery used by Stop and Alive.
func (s *Supervisor) SetSignaler(sig Signaler) {
	s.signaler = sig
}

// PIDPath returns the pid file location.
func (s *Supervisor) PIDPath() string {
	return s.pidPath
}

// Start launches the daemon as an independent child process.
// It returns once the process is spawned; readiness is signalled separately
// through the auth token.
func (s *Supervisor) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd != nil {
		return fmt.Errorf("%w: already started (pid %d)", common.ErrDaemonStart, s.cmd.Process.Pid)
	}

	path, err := exec.LookPath(s.command)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDaemonStart, err)
	}

	// Not CommandContext: the daemon must outlive a cancelled startup context.
	cmd := exec.Command(path, s.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDaemonStart, err)
	}
	common.LogInfo("Daemon started: %s (pid %d)", path, cmd.Process.Pid)

	s.cmd = cmd
	s.exited = make(chan struct{})
	go s.reap(cmd, s.exited)
	return nil
}

func (s *Supervisor) reap(cmd *exec.Cmd, done chan struct{}) {
	err := cmd.Wait()
	if err != nil {
		common.LogWarn("Daemon exited: %v", err)
	} else {
		common.LogInfo("Daemon exited")
	}
	close(done)
}

// Exited is closed when the spawned child has been reaped. It is nil before Start.
func (s *Supervisor) Exited() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exited
}

// PID reads the daemon's pid file. ok is false when the file is absent.
func (s *Supervisor) PID() (pid int, ok bool, err error) {
	data, err := os.ReadFile(s.pidPath)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read pid file: %w", err)
	}

	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false, fmt.Errorf("%w: %q", common.ErrInvalidPID, strings.TrimSpace(string(data)))
	}
	return pid, true, nil
}

// Stop sends SIGTERM to the pid recorded in the pid file and returns
// without waiting for the process to exit. A missing pid file means the
// daemon is already gone and is not an error.
func (s *Supervisor) Stop() error {
	pid, ok, err := s.PID()
	if err != nil {
		return err
	}
	if !ok {
		common.LogInfo("No daemon pid file at %s, skipping termination", s.pidPath)
		return nil
	}

	common.LogInfo("Terminating bitmaskd (pid %d)...", pid)
	if err := s.signaler.Signal(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("%w: pid %d: %v", common.ErrSignal, pid, err)
	}
	return nil
}

// Alive reports whether the pid file names a live process.
func (s *Supervisor) Alive() (int, bool) {
	pid, ok, err := s.PID()
	if err != nil || !ok {
		return 0, false
	}
	return pid, s.signaler.Signal(pid, syscall.Signal(0)) == nil
}
