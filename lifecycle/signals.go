package lifecycle

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/bitmask-shell/common"
)

// WatchSignals forwards SIGINT and SIGTERM to HandleInterrupt until the
// returned stop function is called.
func (c *Controller) WatchSignals() (stop func()) {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for {
			select {
			case sig := <-sigChan:
				common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
				c.HandleInterrupt()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
