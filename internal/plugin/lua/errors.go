package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution runs past the state's
	// timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrModuleNotFound is raised by require for modules that were not
	// preloaded.
	ErrModuleNotFound = errors.New("lua module not found")
)
