package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

const defaultWaitDelay = 2 * time.Second

// Executor runs commands. It holds no per-call state and is safe for concurrent use.
type Executor struct {
	emptyOutput string
	waitDelay   time.Duration
}

// Option configures an Executor.
type Option func(e *Executor)

// WithEmptyOutput sets the text returned when a successful run prints nothing.
func WithEmptyOutput(text string) Option {
	return func(e *Executor) {
		e.emptyOutput = text
	}
}

// WithWaitDelay bounds how long Execute waits for output pipes after the process is gone.
func WithWaitDelay(delay time.Duration) Option {
	return func(e *Executor) {
		e.waitDelay = delay
	}
}

// Execute spawns the command once and waits for it to finish, time out or be cancelled.
func (e *Executor) Execute(ctx context.Context, command *Command) (*Result, error) {
	if command == nil || strings.TrimSpace(command.Program) == "" {
		return nil, &Error{Kind: SpawnFailure, Err: errors.New("program was empty")}
	}
	var runCtx context.Context
	var cancel context.CancelFunc
	if command.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, command.Timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	cmd := exec.CommandContext(runCtx, command.Program, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}
	cmd.Stdin = strings.NewReader(command.Stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = e.waitDelay
	configureKill(cmd)

	started := time.Now()
	if err := cmd.Start(); err != nil {
		if ctxErr := runCtx.Err(); ctxErr != nil {
			return nil, e.interrupted(ctx, command, ctxErr)
		}
		return nil, &Error{Kind: SpawnFailure, Program: command.Program, Err: err}
	}
	err := cmd.Wait()
	if err != nil && errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil && cmd.ProcessState.Success() {
		err = nil
	}
	if err != nil {
		if ctxErr := runCtx.Err(); ctxErr != nil {
			return nil, e.interrupted(ctx, command, ctxErr)
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		return nil, &Error{Kind: NonZeroExit, Program: command.Program, ExitCode: exitCode, Stderr: stderr.String(), Err: err}
	}
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
		Duration: time.Since(started),
	}
	result.setOutput(e.emptyOutput)
	return result, nil
}

// interrupted classifies a run stopped by its context. A caller deadline counts as a timeout.
func (e *Executor) interrupted(parent context.Context, command *Command, ctxErr error) error {
	if parent.Err() == nil || errors.Is(parent.Err(), context.DeadlineExceeded) {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return &Error{Kind: Timeout, Program: command.Program, Timeout: command.Timeout, Err: ctxErr}
		}
	}
	return &Error{Kind: Canceled, Program: command.Program, Err: ctxErr}
}

// New creates an executor.
func New(options ...Option) *Executor {
	ret := &Executor{waitDelay: defaultWaitDelay}
	for _, option := range options {
		option(ret)
	}
	return ret
}
