// Package bridge binds an assistant CLI profile to the tool dispatcher.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clibridge/mcpbridge/process"
	"github.com/clibridge/mcpbridge/tool"
)

// InputStyle defines how the prompt reaches the assistant program.
type InputStyle string

const (
	// Stdin writes the prompt to standard input.
	Stdin InputStyle = "stdin"
	// Argument appends the prompt as the last command line argument.
	Argument InputStyle = "argument"
)

// Profile describes one bridge: identity, the program it drives and the tools it exposes.
type Profile struct {
	Name        string
	Version     string
	Title       string
	Description string
	Program     string
	BaseArgs    []string
	InputStyle  InputStyle
	Timeout     time.Duration
	// Unbounded must be set to run without a timeout.
	Unbounded   bool
	EmptyOutput string
	Tools       []*tool.Spec
}

// Validate checks the profile.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("bridge name was empty")
	}
	if p.Program == "" {
		return fmt.Errorf("%v: program was empty", p.Name)
	}
	switch p.InputStyle {
	case Stdin, Argument:
	default:
		return fmt.Errorf("%v: unsupported input style %q", p.Name, p.InputStyle)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("%v: timeout was negative", p.Name)
	}
	if p.Timeout == 0 && !p.Unbounded {
		return fmt.Errorf("%v: timeout was not set; use unbounded to disable it", p.Name)
	}
	if len(p.Tools) == 0 {
		return fmt.Errorf("%v: no tools defined", p.Name)
	}
	return nil
}

// Command builds the process command for a prompt.
func (p *Profile) Command(prompt string) *process.Command {
	args := make([]string, 0, len(p.BaseArgs)+1)
	args = append(args, p.BaseArgs...)
	ret := &process.Command{Program: p.Program}
	switch p.InputStyle {
	case Argument:
		args = append(args, prompt)
	default:
		ret.Stdin = prompt
	}
	ret.Args = args
	if !p.Unbounded {
		ret.Timeout = p.Timeout
	}
	return ret
}

// Executor runs a process command.
type Executor interface {
	Execute(ctx context.Context, command *process.Command) (*process.Result, error)
}

// Bridge invokes the profile program for tool calls.
type Bridge struct {
	profile    *Profile
	executor   Executor
	dispatcher *tool.Dispatcher
}

// Invoke runs the assistant program once with prompt.
func (b *Bridge) Invoke(ctx context.Context, prompt string) (string, error) {
	result, err := b.executor.Execute(ctx, b.profile.Command(prompt))
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// Dispatcher returns the tool dispatcher.
func (b *Bridge) Dispatcher() *tool.Dispatcher {
	return b.dispatcher
}

// Profile returns the bridge profile.
func (b *Bridge) Profile() *Profile {
	return b.profile
}

// New creates a bridge; a nil executor selects a process executor using the profile placeholder.
func New(profile *Profile, executor Executor) (*Bridge, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if executor == nil {
		executor = process.New(process.WithEmptyOutput(profile.EmptyOutput))
	}
	registry, err := tool.NewRegistry(profile.Tools...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", profile.Name, err)
	}
	ret := &Bridge{profile: profile, executor: executor}
	ret.dispatcher = tool.NewDispatcher(registry, ret)
	return ret, nil
}
