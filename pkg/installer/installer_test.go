package installer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/catalog"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/config"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/prompt"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/state"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/steps"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/testutil"
)

type fixture struct {
	installer *Installer
	runner    *testutil.FakeRunner
	store     *state.Store
	env       *steps.Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	home := t.TempDir()
	t.Setenv(paths.EnvEteStateDir, filepath.Join(home, "state"))
	t.Setenv(paths.EnvEteDataDir, filepath.Join(home, "data"))
	t.Setenv(paths.EnvEteConfigDir, filepath.Join(home, "config"))

	p, err := paths.New(home)
	require.NoError(t, err)

	c, err := catalog.Load()
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)

	runner := testutil.NewFakeRunner()
	env := &steps.Env{
		Platform: platform.Platform{OS: platform.OSLinux, PackageManager: platform.PkgApt},
		Runner:   runner,
		Paths:    p,
		Catalog:  c,
		Config:   cfg,
	}

	// nvm is probed via ~/.nvm, not PATH
	testutil.CreateFile(t, home, ".nvm/nvm.sh", "# nvm")

	store := state.NewStore(p.StateFilePath(), p.LockFilePath())
	return &fixture{
		installer: New(env, store),
		runner:    runner,
		store:     store,
		env:       env,
	}
}

func yes() prompt.Prompter { return &prompt.StaticPrompter{Answer: true} }
func no() prompt.Prompter  { return &prompt.StaticPrompter{Answer: false} }

func TestRun_FullPlanSucceeds(t *testing.T) {
	f := newFixture(t)

	result, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.NoError(t, err)

	require.Len(t, result.Results, 7)
	assert.False(t, result.Failed())

	st, err := f.store.Load()
	require.NoError(t, err)
	for _, name := range steps.Names() {
		assert.True(t, st.IsDone(name), "step %s should be done", name)
	}

	// File-drop steps actually ran
	assert.True(t, testutil.FileExists(t, filepath.Join(f.env.Paths.HomeDir(), ".zshrc")))
	assert.True(t, testutil.FileExists(t, f.env.Paths.FunctionsPath()))
}

func TestRun_DeclinedLanguagesAreSkipped(t *testing.T) {
	f := newFixture(t)

	result, err := f.installer.Run(context.Background(), Options{Prompter: no()})
	require.NoError(t, err)

	st, err := f.store.Load()
	require.NoError(t, err)
	for _, lang := range []string{"python", "node", "ruby"} {
		assert.Equal(t, state.StatusSkipped, st.StatusOf(lang))
	}
	assert.True(t, st.IsDone("packages"))
	assert.False(t, result.Failed())
}

func TestRun_LanguagesNotInConfigAreSkippedWithoutPrompt(t *testing.T) {
	f := newFixture(t)
	f.env.Config.Install.Languages = []string{"python"}

	asked := 0
	counting := prompterFunc(func(q string, def bool) (bool, error) {
		asked++
		return true, nil
	})

	_, err := f.installer.Run(context.Background(), Options{Prompter: counting})
	require.NoError(t, err)
	assert.Equal(t, 1, asked, "only the configured language should be offered")

	st, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, state.StatusSkipped, st.StatusOf("node"))
	assert.Equal(t, state.StatusSkipped, st.StatusOf("ruby"))
}

type prompterFunc func(q string, def bool) (bool, error)

func (f prompterFunc) Confirm(q string, def bool) (bool, error) { return f(q, def) }

func TestRun_RequiredStepFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.runner.Missing = []string{"tmux"} // packages unsatisfied, so it actually runs
	f.runner.FailOn["sudo apt-get update"] = assert.AnError

	result, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.Error(t, err)
	assert.Equal(t, errors.ErrStepFailed, errors.CodeOf(err))
	assert.True(t, result.Failed())

	st, lerr := f.store.Load()
	require.NoError(t, lerr)
	assert.Equal(t, state.StatusFailed, st.StatusOf("packages"))
	// Later steps never started
	assert.Equal(t, state.StatusPending, st.StatusOf("configs"))
}

func TestRun_SoftFailureContinues(t *testing.T) {
	f := newFixture(t)
	f.runner.Missing = []string{"fzf"}
	f.runner.FailOn["sudo apt-get install -y fzf"] = assert.AnError

	result, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.NoError(t, err, "soft failures must not abort the run")
	assert.True(t, result.Failed())

	st, lerr := f.store.Load()
	require.NoError(t, lerr)
	assert.Equal(t, state.StatusFailed, st.StatusOf("packages"))
	assert.True(t, st.IsDone("configs"), "run continued past the soft failure")
}

func TestRun_RecoverSkipsDoneSteps(t *testing.T) {
	f := newFixture(t)

	// First run: python fails because its runtime is missing.
	f.runner.Missing = []string{"python3", "pyenv"}
	result, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.NoError(t, err, "optional step failure must not abort")
	assert.True(t, result.Failed())

	st, lerr := f.store.Load()
	require.NoError(t, lerr)
	assert.Equal(t, state.StatusFailed, st.StatusOf("python"))
	require.True(t, st.IsDone("packages"))

	// Second run with --recover: python3 now resolvable, done steps skipped.
	f.runner.Missing = nil
	f.runner.Calls = nil
	result, err = f.installer.Run(context.Background(), Options{Recover: true, Prompter: yes()})
	require.NoError(t, err)
	assert.False(t, result.Failed())

	// packages was recorded done, so no package-manager calls repeat
	assert.False(t, f.runner.CalledWith("sudo apt-get update"))

	st, lerr = f.store.Load()
	require.NoError(t, lerr)
	assert.True(t, st.IsDone("python"))
}

func TestRun_RecoverKeepsDoneLanguagesWithoutReprompt(t *testing.T) {
	f := newFixture(t)

	_, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.NoError(t, err)

	st, err := f.store.Load()
	require.NoError(t, err)
	require.True(t, st.IsDone("python"))

	// A non-interactive resume answers no to everything; completed
	// languages must not be offered again, let alone demoted.
	asked := 0
	declining := prompterFunc(func(q string, def bool) (bool, error) {
		asked++
		return false, nil
	})

	result, err := f.installer.Run(context.Background(), Options{Recover: true, Prompter: declining})
	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.Equal(t, 0, asked, "recover must not re-offer completed steps")

	st, err = f.store.Load()
	require.NoError(t, err)
	for _, lang := range []string{"python", "node", "ruby"} {
		assert.True(t, st.IsDone(lang), "recover must keep %s done", lang)
	}
}

func TestRun_ExplicitStepsSkipPrompts(t *testing.T) {
	f := newFixture(t)

	result, err := f.installer.Run(context.Background(), Options{
		Steps:    []string{"templates", "python"},
		Prompter: no(), // must be ignored for explicitly named steps
	})
	require.NoError(t, err)

	require.Len(t, result.Results, 2)
	// Canonical order is preserved regardless of argument order
	assert.Equal(t, "python", result.Results[0].Step)
	assert.Equal(t, "templates", result.Results[1].Step)

	st, lerr := f.store.Load()
	require.NoError(t, lerr)
	assert.True(t, st.IsDone("templates"))
	assert.Equal(t, state.StatusPending, st.StatusOf("configs"))
}

func TestRun_UnknownStepRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.installer.Run(context.Background(), Options{Steps: []string{"haskell"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrStepNotFound, errors.CodeOf(err))
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	f := newFixture(t)
	f.runner.Missing = []string{"tmux"} // make packages unsatisfied

	result, err := f.installer.Run(context.Background(), Options{DryRun: true, Prompter: yes()})
	require.NoError(t, err)
	assert.True(t, result.DryRun)

	assert.False(t, f.runner.CalledWith("sudo apt-get"), "dry run must not execute commands")
	assert.False(t, testutil.FileExists(t, filepath.Join(f.env.Paths.HomeDir(), ".zshrc")))
	assert.False(t, testutil.FileExists(t, f.store.Path()), "dry run must not write state")
}

func TestRun_SatisfiedStepsAreNotRerun(t *testing.T) {
	f := newFixture(t)

	// All catalog tools resolve, so packages is satisfied via Check.
	result, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.False(t, f.runner.CalledWith("sudo apt-get update"),
		"satisfied packages step should skip the package manager entirely")
}

func TestRun_ForceRerunsSatisfiedSteps(t *testing.T) {
	f := newFixture(t)

	_, err := f.installer.Run(context.Background(), Options{Force: true, Steps: []string{"packages"}})
	require.NoError(t, err)
	assert.True(t, f.runner.CalledWith("sudo apt-get update"))
}

func TestRun_LockHeldRejected(t *testing.T) {
	f := newFixture(t)

	other := state.NewStore(f.store.Path(), f.env.Paths.LockFilePath())
	require.NoError(t, other.Lock())
	defer other.Unlock()

	_, err := f.installer.Run(context.Background(), Options{Prompter: yes()})
	require.Error(t, err)
	assert.Equal(t, errors.ErrStateLocked, errors.CodeOf(err))
}
