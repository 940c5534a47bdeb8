package process

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind classifies an execution failure.
type ErrorKind int

const (
	// SpawnFailure means the program could not be launched.
	SpawnFailure ErrorKind = iota + 1
	// Timeout means the command deadline elapsed and the process was killed.
	Timeout
	// NonZeroExit means the program ran and reported failure.
	NonZeroExit
	// Canceled means the caller context was cancelled and the process was killed.
	Canceled
)

func (k ErrorKind) String() string {
	switch k {
	case SpawnFailure:
		return "SpawnFailure"
	case Timeout:
		return "Timeout"
	case NonZeroExit:
		return "NonZeroExit"
	case Canceled:
		return "Canceled"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error represents a failed execution.
type Error struct {
	Kind     ErrorKind
	Program  string
	ExitCode int
	Stderr   string
	Timeout  time.Duration
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case SpawnFailure:
		return fmt.Sprintf("failed to start %v: %v", e.Program, e.Err)
	case Timeout:
		return fmt.Sprintf("%v execution timed out after %v", e.Program, e.Timeout)
	case NonZeroExit:
		stderr := strings.TrimSpace(e.Stderr)
		if stderr == "" && e.Err != nil {
			stderr = e.Err.Error()
		}
		return fmt.Sprintf("%v failed with code %d: %v", e.Program, e.ExitCode, stderr)
	case Canceled:
		return fmt.Sprintf("%v execution canceled", e.Program)
	}
	return fmt.Sprintf("%v: %v", e.Program, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var execErr *Error
	if errors.As(err, &execErr) {
		return execErr.Kind == kind
	}
	return false
}
