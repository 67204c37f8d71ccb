package fragula

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user pressed back on the start destination.
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("navigation cancelled by user")

	// ErrNotInitialized is returned when NavHost runs before Init.
	ErrNotInitialized = errors.New("fragula: Init has not been called")
)

// InfrastructureError represents a framework-level error: SDL failed to
// initialize, the window or renderer could not be created, and so on.
// These errors are typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "sdl_init", "create_window")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fragula: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fragula: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
