package steps

import (
	"context"
	"os"
	"path/filepath"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

// managerInstallers maps a version manager to the curl installer the
// original setup scripts used on Linux. On macOS Homebrew provides
// all three directly.
var managerInstallers = map[string]string{
	"pyenv": "curl -fsSL https://pyenv.run | bash",
	"nvm":   "curl -fsSL https://raw.githubusercontent.com/nvm-sh/nvm/v0.40.1/install.sh | bash",
	"rbenv": "curl -fsSL https://github.com/rbenv/rbenv-installer/raw/HEAD/bin/rbenv-installer | bash",
}

// languageStep sets up one language ecosystem: version manager first,
// then the language-level tools from the catalog.
type languageStep struct {
	name        string
	displayName string
}

// NewLanguageStep creates a language toolchain step (python, node, ruby)
func NewLanguageStep(name, displayName string) Step {
	return &languageStep{name: name, displayName: displayName}
}

func (s *languageStep) Name() string        { return s.name }
func (s *languageStep) Description() string { return s.displayName + " toolchain" }
func (s *languageStep) Optional() bool      { return true }

func (s *languageStep) Check(ctx context.Context, env *Env) (bool, error) {
	st := env.Catalog.StepTools(s.name)

	if st.Manager != "" && !s.managerPresent(env, st.Manager) {
		return false, nil
	}
	if st.Runtime != "" && !platform.HasCommand(env.Runner, st.Runtime) {
		return false, nil
	}
	for _, tool := range st.Tools {
		if !platform.HasCommand(env.Runner, tool.CheckCommand()) {
			return false, nil
		}
	}
	return true, nil
}

func (s *languageStep) Run(ctx context.Context, env *Env) error {
	logger := logging.GetLogger("steps." + s.name)
	st := env.Catalog.StepTools(s.name)

	if st.Manager != "" && !s.managerPresent(env, st.Manager) {
		if err := s.installManager(ctx, env, st.Manager); err != nil {
			return errors.Wrapf(err, errors.ErrStepFailed, "failed to install %s", st.Manager)
		}
		logger.Info().Str("manager", st.Manager).Msg("Installed version manager")
	}

	// Language tools need the runtime on PATH. Right after a fresh
	// version-manager install it usually is not; the user has to open
	// a new shell and re-run, which --recover makes cheap.
	if st.Runtime != "" && !platform.HasCommand(env.Runner, st.Runtime) {
		return errors.Newf(errors.ErrCommandMissing,
			"%s is not on PATH yet; restart your shell and re-run `ete install --recover`", st.Runtime)
	}

	var failed []string
	for _, tool := range st.Tools {
		if platform.HasCommand(env.Runner, tool.CheckCommand()) {
			logger.Debug().Str("tool", tool.Name).Msg("Already installed")
			continue
		}

		name, args := installerCommand(tool.Installer, tool.Name, env)
		if err := env.Runner.Run(ctx, name, args...); err != nil {
			logger.Warn().Err(err).Str("tool", tool.Name).Msg("Tool install failed, continuing")
			failed = append(failed, tool.Name)
			continue
		}
		logger.Info().Str("tool", tool.Name).Msg("Installed")
	}

	if len(failed) > 0 {
		return errors.Newf(errors.ErrToolInstall,
			"%d %s tool(s) failed to install: %v", len(failed), s.displayName, failed).AsSoft()
	}
	return nil
}

// managerPresent checks for the version manager. nvm is a shell
// function rather than a binary, so it is probed by its install dir.
func (s *languageStep) managerPresent(env *Env, manager string) bool {
	if manager == "nvm" {
		_, err := os.Stat(filepath.Join(env.Paths.HomeDir(), ".nvm", "nvm.sh"))
		return err == nil
	}
	return platform.HasCommand(env.Runner, manager)
}

// installManager installs the version manager: Homebrew where
// available, otherwise the upstream curl installer.
func (s *languageStep) installManager(ctx context.Context, env *Env, manager string) error {
	if env.Platform.PackageManager == platform.PkgBrew {
		name, args := env.Platform.InstallCommand(manager)
		return env.Runner.Run(ctx, name, args...)
	}

	script, ok := managerInstallers[manager]
	if !ok {
		return errors.Newf(errors.ErrNotImplemented, "no installer known for %s", manager)
	}
	return env.Runner.Run(ctx, "bash", "-c", script)
}

// installerCommand returns the command line for a language-level tool
func installerCommand(installer, pkg string, env *Env) (string, []string) {
	switch installer {
	case "pip":
		return "python3", []string{"-m", "pip", "install", "--user", pkg}
	case "npm":
		return "npm", []string{"install", "-g", pkg}
	case "gem":
		return "gem", []string{"install", pkg}
	default:
		name, args := env.Platform.InstallCommand(pkg)
		return name, args
	}
}
