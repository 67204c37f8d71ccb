package host

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCollaborator is wrapped by the ConfigError Attach returns when
	// a required owner is nil.
	ErrMissingCollaborator = errors.New("missing required collaborator")

	// ErrAlreadyAttached is returned by a second Attach.
	ErrAlreadyAttached = errors.New("host already attached")

	// ErrClosed is returned by operations on a host that has been torn down.
	ErrClosed = errors.New("host closed")
)

// ConfigError reports a host that was wired incorrectly. It is raised at
// attach time and is not recoverable by retrying.
type ConfigError struct {
	Op  string // e.g. "attach"
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fragula host: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a host configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
