// Package executor runs built command lines in the host shell.
package executor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// LocalExecutor runs commands with `<shell> -c`.
type LocalExecutor struct {
	shell string
}

// NewLocalExecutor builds a new executor; shell defaults to /bin/sh, not
// $SHELL, since built commands use POSIX pipelines.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell}
}

// Execute implements ports.CommandExecutor, capturing stdout and stderr.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	var stdout, stderr bytes.Buffer
	result, err := e.run(ctx, command, nil, &stdout, &stderr)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result, err
}

// ExecuteInteractive implements ports.InteractiveExecutor. Nil streams fall
// back to the process's own stdio.
func (e *LocalExecutor) ExecuteInteractive(ctx context.Context, command string, stdin io.Reader, stdout, stderr io.Writer) (domain.ExecutionResult, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return e.run(ctx, command, stdin, stdout, stderr)
}

func (e *LocalExecutor) run(ctx context.Context, command string, stdin io.Reader, stdout, stderr io.Writer) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	c.Stdin = stdin
	c.Stdout = stdout
	c.Stderr = stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Ran:        err == nil,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err == nil {
		return result, nil
	}

	result.Err = err
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1
	}
	return result, err
}

var (
	_ ports.CommandExecutor     = (*LocalExecutor)(nil)
	_ ports.InteractiveExecutor = (*LocalExecutor)(nil)
)
