package process

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner/local"
)

// Probe runs program with args (default --version) in a local shell session and returns its trimmed output.
func Probe(ctx context.Context, program string, args ...string) (string, error) {
	if len(args) == 0 {
		args = []string{"--version"}
	}
	service, err := gosh.New(ctx, local.New())
	if err != nil {
		return "", fmt.Errorf("failed to start shell: %w", err)
	}
	defer closeShell(service)
	output, code, err := service.Run(ctx, shellCommand(program, args...))
	if err != nil {
		return "", &Error{Kind: SpawnFailure, Program: program, Err: err}
	}
	output = strings.TrimSpace(output)
	if code != 0 {
		return "", &Error{Kind: NonZeroExit, Program: program, ExitCode: code, Stderr: output}
	}
	return output, nil
}

// closeShell stops the session shell and reaps it.
func closeShell(service *gosh.Service) {
	pid := service.PID()
	_ = service.Close()
	if pid <= 0 {
		return
	}
	if proc, err := os.FindProcess(pid); err == nil {
		_, _ = proc.Wait()
	}
}

func shellCommand(program string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(program))
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

func shellQuote(value string) string {
	if value != "" && strings.IndexFunc(value, func(r rune) bool {
		return !(r == '-' || r == '_' || r == '.' || r == '/' || r == '=' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}) == -1 {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
