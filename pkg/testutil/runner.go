package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FakeRunner is an in-memory CommandRunner for tests. It records every
// invocation and never touches the host.
type FakeRunner struct {
	mu sync.Mutex

	// Calls records each invocation as "name arg1 arg2 ...".
	Calls []string

	// FailOn maps a command prefix to the error Run/Output return for it.
	FailOn map[string]error

	// Missing lists command names LookPath reports as absent.
	Missing []string

	// Outputs maps a command prefix to the stdout Output returns for it.
	Outputs map[string]string
}

// NewFakeRunner creates an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		FailOn:  make(map[string]error),
		Outputs: make(map[string]string),
	}
}

func (r *FakeRunner) record(name string, args []string) string {
	call := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.mu.Lock()
	r.Calls = append(r.Calls, call)
	r.mu.Unlock()
	return call
}

func (r *FakeRunner) matchErr(call string) error {
	for prefix, err := range r.FailOn {
		if strings.HasPrefix(call, prefix) {
			return err
		}
	}
	return nil
}

func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	call := r.record(name, args)
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.matchErr(call)
}

func (r *FakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	call := r.record(name, args)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.matchErr(call); err != nil {
		return "", err
	}
	for prefix, out := range r.Outputs {
		if strings.HasPrefix(call, prefix) {
			return out, nil
		}
	}
	return "", nil
}

func (r *FakeRunner) LookPath(name string) (string, error) {
	for _, missing := range r.Missing {
		if name == missing {
			return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// CalledWith reports whether any recorded call starts with prefix
func (r *FakeRunner) CalledWith(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, call := range r.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}
