package process

import (
	"strings"
	"time"
)

// Command describes one external program invocation.
type Command struct {
	Program string
	Args    []string
	// Stdin is written in full and then closed, also when empty.
	Stdin string
	// Timeout bounds the run; zero means unbounded.
	Timeout time.Duration
	Dir     string
	// Env entries are appended to the current process environment.
	Env []string
}

// Result holds what a finished process produced.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Output is the trimmed standard output, or the executor placeholder when empty.
	Output   string
	Duration time.Duration
}

func (r *Result) setOutput(emptyOutput string) {
	r.Output = strings.TrimSpace(r.Stdout)
	if r.Output == "" {
		r.Output = emptyOutput
	}
}
