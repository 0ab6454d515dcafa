package steps

import (
	"context"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/assets"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
)

// configsStep copies the dotfile configs (zsh, tmux, neovim, git)
// into the home directory.
type configsStep struct{}

// NewConfigsStep creates the dotfile configs step
func NewConfigsStep() Step {
	return &configsStep{}
}

func (s *configsStep) Name() string        { return "configs" }
func (s *configsStep) Description() string { return "Shell, tmux, Neovim and git configuration files" }
func (s *configsStep) Optional() bool      { return false }

// Check always reports unsatisfied: installing configs is cheap and
// idempotent, and re-running picks up asset updates.
func (s *configsStep) Check(ctx context.Context, env *Env) (bool, error) {
	return false, nil
}

func (s *configsStep) Run(ctx context.Context, env *Env) error {
	installer := assets.NewConfigInstaller(env.Paths, env.Config.Backup.Enabled)
	if err := installer.InstallAll(); err != nil {
		return errors.Wrap(err, errors.ErrStepFailed, "failed to install configs")
	}
	return nil
}

// templatesStep drops the project-template generator scripts.
type templatesStep struct{}

// NewTemplatesStep creates the project templates step
func NewTemplatesStep() Step {
	return &templatesStep{}
}

func (s *templatesStep) Name() string        { return "templates" }
func (s *templatesStep) Description() string { return "Project scaffold generators (python, node, ruby)" }
func (s *templatesStep) Optional() bool      { return false }

func (s *templatesStep) Check(ctx context.Context, env *Env) (bool, error) {
	return false, nil
}

func (s *templatesStep) Run(ctx context.Context, env *Env) error {
	if err := assets.InstallTemplates(env.Paths); err != nil {
		return errors.Wrap(err, errors.ErrStepFailed, "failed to install templates")
	}
	return nil
}

// functionsStep installs functions.sh and wires it into the rc file.
type functionsStep struct{}

// NewFunctionsStep creates the shell functions step
func NewFunctionsStep() Step {
	return &functionsStep{}
}

func (s *functionsStep) Name() string        { return "functions" }
func (s *functionsStep) Description() string { return "Shell functions and rc-file snippet" }
func (s *functionsStep) Optional() bool      { return false }

func (s *functionsStep) Check(ctx context.Context, env *Env) (bool, error) {
	return false, nil
}

func (s *functionsStep) Run(ctx context.Context, env *Env) error {
	if err := assets.InstallFunctions(env.Paths); err != nil {
		return errors.Wrap(err, errors.ErrStepFailed, "failed to install shell functions")
	}

	rcPath := env.Paths.RCFilePath(env.Config.Shell.Default)
	snippet := assets.Snippet(env.Paths.FunctionsPath())
	if err := assets.AppendSnippet(rcPath, snippet); err != nil {
		return errors.Wrap(err, errors.ErrStepFailed, "failed to update rc file")
	}
	return nil
}
