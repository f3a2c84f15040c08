// Package daemon launches and stops bitmaskd and performs the readiness
// handshake with it.
//
// The shell and the daemon share nothing but files and signals:
//
//   - <prefix>/leap/authtoken is written by the daemon once it serves
//     requests. TokenWaiter polls for it with a hard bound.
//   - <prefix>/leap/pid holds the daemon's process id. Supervisor.Stop
//     sends SIGTERM to it and returns without confirming the exit.
package daemon
