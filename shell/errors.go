package shell

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shell.
var (
	// ErrNotRunning is returned when operations require a running loop.
	ErrNotRunning = errors.New("shell is not running")

	// ErrAlreadyRunning is returned when Run is called twice.
	ErrAlreadyRunning = errors.New("shell is already running")

	// ErrShutdown is returned when the loop has stopped and no further
	// events will be delivered.
	ErrShutdown = errors.New("shell has shut down")

	// ErrWindowClosed is returned when a handle refers to a window that
	// no longer exists.
	ErrWindowClosed = errors.New("window is closed")

	// ErrNoHandler is returned when a window is built without a handler.
	ErrNoHandler = errors.New("window has no handler")

	// ErrHandlerPanic is returned when a window handler panics.
	ErrHandlerPanic = errors.New("window handler panicked")
)

// InitError wraps a failure to bring up a shell component.
type InitError struct {
	// Component names the part that failed to initialize.
	Component string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic raised inside a window handler callback.
type PanicError struct {
	// Op is the handler callback that panicked.
	Op string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic in %s: %v", e.Op, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
