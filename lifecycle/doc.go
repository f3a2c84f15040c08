// Package lifecycle drives one run of the shell.
//
// A Controller moves through
//
//	Idle -> Launching -> WaitingForToken -> Ready -> Running -> ShuttingDown -> Terminated
//
// with Launching -> Failed when the daemon never becomes ready. Shutdown
// can be triggered by closing the window, by the page calling
// bitmaskApp.shutdown(), by the tray Quit item, or by SIGINT/SIGTERM; the
// first trigger runs the teardown and the rest are no-ops.
//
// The toolkit is reached only through Platform, so the controller holds
// no global state and tests substitute a fake event loop.
package lifecycle
