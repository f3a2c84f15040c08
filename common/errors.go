// Package common provides shared constants, types, and utilities
// used across the Bitmask shell.
package common

import "errors"

// Sentinel errors for the shell.
// These can be checked with errors.Is() for proper error handling.
var (
	// Startup errors.
	ErrNoAuthToken     = errors.New("no authentication token found")
	ErrDaemonStart     = errors.New("failed to start daemon")
	ErrAlreadyRunning  = errors.New("another shell instance is already running")
	ErrPlatformMissing = errors.New("no UI platform available")

	// Daemon control errors.
	ErrInvalidPID = errors.New("invalid pid file")
	ErrSignal     = errors.New("failed to signal daemon")

	// Event bus errors.
	ErrBusUnavailable = errors.New("event bus unavailable")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
