package steps

import (
	"context"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

// packagesStep installs the core CLI tools through the system package
// manager. A failed metadata refresh aborts the step; a single failed
// package is logged and skipped, matching how the original installer
// soldiered on past individual tool failures.
type packagesStep struct{}

// NewPackagesStep creates the core packages step
func NewPackagesStep() Step {
	return &packagesStep{}
}

func (s *packagesStep) Name() string        { return "packages" }
func (s *packagesStep) Description() string { return "Core CLI tools (git, zsh, tmux, neovim, ...)" }
func (s *packagesStep) Optional() bool      { return false }

func (s *packagesStep) Check(ctx context.Context, env *Env) (bool, error) {
	for _, tool := range env.Catalog.StepTools(s.Name()).Tools {
		if !platform.HasCommand(env.Runner, tool.CheckCommand()) {
			return false, nil
		}
	}
	return true, nil
}

func (s *packagesStep) Run(ctx context.Context, env *Env) error {
	logger := logging.GetLogger("steps.packages")

	name, args := env.Platform.UpdateCommand()
	if err := env.Runner.Run(ctx, name, args...); err != nil {
		return errors.Wrap(err, errors.ErrCommandFailed, "failed to refresh package metadata")
	}

	var failed []string
	for _, tool := range env.Catalog.StepTools(s.Name()).Tools {
		if platform.HasCommand(env.Runner, tool.CheckCommand()) {
			logger.Debug().Str("tool", tool.Name).Msg("Already installed")
			continue
		}

		pkg := tool.PackageFor(env.Platform.PackageManager)
		name, args := env.Platform.InstallCommand(pkg)
		if err := env.Runner.Run(ctx, name, args...); err != nil {
			logger.Warn().Err(err).Str("tool", tool.Name).Msg("Package install failed, continuing")
			failed = append(failed, tool.Name)
			continue
		}
		logger.Info().Str("tool", tool.Name).Msg("Installed")
	}

	// Core tooling is required; if everything failed something is
	// wrong with the package manager itself.
	tools := env.Catalog.StepTools(s.Name()).Tools
	if len(tools) > 0 && len(failed) == len(tools) {
		return errors.Newf(errors.ErrStepFailed, "all %d core packages failed to install", len(tools))
	}
	if len(failed) > 0 {
		return errors.Newf(errors.ErrToolInstall, "%d package(s) failed to install: %v", len(failed), failed).AsSoft()
	}
	return nil
}
