// Package doctor runs preflight checks: is this host something ete
// can set up, and is everything the installer relies on in place.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

// CheckStatus represents the result of a preflight check.
type CheckStatus int

const (
	// StatusPass indicates the check passed successfully.
	StatusPass CheckStatus = iota
	// StatusWarn indicates a non-critical warning.
	StatusWarn
	// StatusFail indicates the check failed.
	StatusFail
)

// String returns the string representation of a CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult holds the result of a single preflight check.
type CheckResult struct {
	Name     string
	Status   CheckStatus
	Message  string
	Required bool
}

// IsCritical returns true if this is a required check that failed.
func (r CheckResult) IsCritical() bool {
	return r.Required && r.Status == StatusFail
}

// Checker performs preflight validation checks.
type Checker struct {
	runner platform.CommandRunner
	paths  paths.Paths
}

// New creates a Checker
func New(runner platform.CommandRunner, p paths.Paths) *Checker {
	return &Checker{runner: runner, paths: p}
}

// requiredCommands must be on PATH before an install makes sense.
// curl covers the version-manager installers on Linux.
var requiredCommands = []string{"git", "curl"}

// RunAll runs all preflight checks and returns the results.
func (c *Checker) RunAll(ctx context.Context) []CheckResult {
	var results []CheckResult

	results = append(results, c.CheckPlatform())
	for _, cmd := range requiredCommands {
		results = append(results, c.CheckCommand(cmd))
	}
	results = append(results, c.CheckWritable("home directory", c.paths.HomeDir(), true))
	results = append(results, c.CheckWritable("state directory", c.paths.StateDir(), true))
	results = append(results, c.CheckShell())

	return results
}

// CheckPlatform verifies the OS and package manager are supported
func (c *Checker) CheckPlatform() CheckResult {
	plat, err := platform.Detect(c.runner)
	if err != nil {
		return CheckResult{
			Name:     "platform",
			Status:   StatusFail,
			Message:  err.Error(),
			Required: true,
		}
	}
	return CheckResult{
		Name:     "platform",
		Status:   StatusPass,
		Message:  fmt.Sprintf("%s with %s", plat.OS, plat.PackageManager),
		Required: true,
	}
}

// CheckCommand verifies a command resolves on PATH
func (c *Checker) CheckCommand(name string) CheckResult {
	path, err := c.runner.LookPath(name)
	if err != nil {
		return CheckResult{
			Name:     name,
			Status:   StatusFail,
			Message:  name + " not found on PATH",
			Required: true,
		}
	}
	return CheckResult{
		Name:     name,
		Status:   StatusPass,
		Message:  path,
		Required: true,
	}
}

// CheckWritable verifies a directory exists (or can be created) and
// accepts writes.
func (c *Checker) CheckWritable(name, dir string, required bool) CheckResult {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CheckResult{Name: name, Status: StatusFail, Message: err.Error(), Required: required}
	}

	probe := filepath.Join(dir, ".ete-doctor-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0644); err != nil {
		return CheckResult{Name: name, Status: StatusFail, Message: err.Error(), Required: required}
	}
	_ = os.Remove(probe)

	return CheckResult{Name: name, Status: StatusPass, Message: dir + " is writable", Required: required}
}

// CheckShell warns when zsh is absent; the packages step installs it,
// so this is advisory only.
func (c *Checker) CheckShell() CheckResult {
	if !platform.HasCommand(c.runner, "zsh") {
		return CheckResult{
			Name:    "zsh",
			Status:  StatusWarn,
			Message: "zsh not installed yet; the packages step will install it",
		}
	}
	return CheckResult{Name: "zsh", Status: StatusPass, Message: "zsh available"}
}

// HasCriticalFailures returns true if any required check failed.
func HasCriticalFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.IsCritical() {
			return true
		}
	}
	return false
}
