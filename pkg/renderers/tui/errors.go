package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilState is returned when Collect is called without a form state.
	ErrNilState = errors.New("tui: form state is nil")
	// ErrInvalidSelection is returned when the driver reports an index outside
	// the option list.
	ErrInvalidSelection = errors.New("tui: selection out of range")
)
