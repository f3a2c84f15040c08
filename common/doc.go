// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Bitmask shell.
//
// This package holds the cross-cutting pieces every other package needs:
//
//   - Constants: file names under the leap directory, local URLs, handshake bounds
//   - Errors: sentinel errors such as ErrNoAuthToken, checked with errors.Is
//   - Interfaces: VPNStatus and the StatusRenderer the tray implements
//   - Logger: leveled logging to stdout and a rotated file
//
// # Usage
//
//	token, err := daemon.WaitForToken(ctx, common.LeapPath(prefix, common.AuthTokenFileName),
//	    common.TokenAttempts, common.TokenInterval)
//	if errors.Is(err, common.ErrNoAuthToken) {
//	    common.LogError("daemon never became ready")
//	}
package common
