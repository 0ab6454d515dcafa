// Package steps defines the setup steps the installer sequences: core
// packages, per-language toolchains, dotfile configs, project
// templates, and shell functions. Steps are data plus two behaviors:
// Check (is the machine already in the desired state?) and Run.
package steps

import (
	"context"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/catalog"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/config"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

// Env carries everything a step needs to act on the host
type Env struct {
	Platform platform.Platform
	Runner   platform.CommandRunner
	Paths    paths.Paths
	Catalog  *catalog.Catalog
	Config   *config.Config
}

// Step is one unit of the install plan
type Step interface {
	// Name is the stable identifier used in state records and CLI args.
	Name() string

	// Description is the one-line summary shown to the user.
	Description() string

	// Optional steps are offered via prompt and their failures do not
	// abort the run. Required steps abort on failure.
	Optional() bool

	// Check reports whether the step is already satisfied.
	Check(ctx context.Context, env *Env) (bool, error)

	// Run performs the step.
	Run(ctx context.Context, env *Env) error
}

// All returns the builtin steps in install order: core packages first,
// then the optional language toolchains, then the file drops.
func All() []Step {
	return []Step{
		NewPackagesStep(),
		NewLanguageStep("python", "Python"),
		NewLanguageStep("node", "Node.js"),
		NewLanguageStep("ruby", "Ruby"),
		NewConfigsStep(),
		NewTemplatesStep(),
		NewFunctionsStep(),
	}
}

// ByName resolves a step from the builtin set
func ByName(name string) (Step, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.Newf(errors.ErrStepNotFound, "no step named %q", name)
}

// Names returns the builtin step names in install order
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	return names
}
