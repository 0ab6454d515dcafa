package platform

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
)

// CommandRunner abstracts external command execution so steps can be
// tested without touching the host.
type CommandRunner interface {
	// Run executes a command, streaming its output to the process
	// stdout/stderr.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports where name resolves on PATH, like `command -v`.
	LookPath(name string) (string, error)
}

// ExecRunner is the production CommandRunner backed by os/exec
type ExecRunner struct{}

// NewExecRunner creates a CommandRunner that executes real commands
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	logging.LogCommand(name, args)
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// HasCommand reports whether name resolves on PATH
func HasCommand(runner CommandRunner, name string) bool {
	_, err := runner.LookPath(name)
	return err == nil
}
