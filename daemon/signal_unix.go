//go:build !windows

package daemon

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

type osSignaler struct{}

func (osSignaler) Signal(pid int, sig syscall.Signal) error {
	return unix.Kill(pid, sig)
}

// detach puts the daemon in its own process group so a terminal SIGINT
// reaches only the shell.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
