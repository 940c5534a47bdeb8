package tool

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a dispatch failure.
type ErrorKind int

const (
	// UnknownTool means no tool with the requested name is registered.
	UnknownTool ErrorKind = iota + 1
	// InvalidArguments means the arguments violate the tool schema.
	InvalidArguments
	// ExecutionFailed means the assistant program failed.
	ExecutionFailed
)

// Error represents a failed tool call.
type Error struct {
	Kind ErrorKind
	Tool string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownTool:
		return fmt.Sprintf("unknown tool: %v", e.Tool)
	case InvalidArguments:
		return fmt.Sprintf("invalid arguments for %v: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("Tool execution failed: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError returns the *Error wrapped by err, if any.
func AsError(err error) (*Error, bool) {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr, true
	}
	return nil, false
}
