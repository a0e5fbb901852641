package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoDriver is returned when a renderer or editor has no prompt driver.
	ErrNoDriver = errors.New("tui: prompt driver is nil")
)
