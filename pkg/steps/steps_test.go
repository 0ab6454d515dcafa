package steps

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
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/testutil"
)

func newTestEnv(t *testing.T, runner *testutil.FakeRunner, plat platform.Platform) *Env {
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

	return &Env{
		Platform: plat,
		Runner:   runner,
		Paths:    p,
		Catalog:  c,
		Config:   cfg,
	}
}

var aptPlatform = platform.Platform{OS: platform.OSLinux, PackageManager: platform.PkgApt}
var brewPlatform = platform.Platform{OS: platform.OSDarwin, PackageManager: platform.PkgBrew}

func TestAll_OrderAndNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"packages", "python", "node", "ruby", "configs", "templates", "functions"}, names)
}

func TestByName(t *testing.T) {
	s, err := ByName("python")
	require.NoError(t, err)
	assert.Equal(t, "python", s.Name())
	assert.True(t, s.Optional())

	_, err = ByName("haskell")
	require.Error(t, err)
	assert.Equal(t, errors.ErrStepNotFound, errors.CodeOf(err))
}

func TestPackagesStep_InstallsMissingTools(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"rg", "fzf"}
	env := newTestEnv(t, runner, aptPlatform)

	err := NewPackagesStep().Run(context.Background(), env)
	require.NoError(t, err)

	assert.True(t, runner.CalledWith("sudo apt-get update"))
	assert.True(t, runner.CalledWith("sudo apt-get install -y ripgrep"))
	assert.True(t, runner.CalledWith("sudo apt-get install -y fzf"))
	// Present tools are not reinstalled
	assert.False(t, runner.CalledWith("sudo apt-get install -y git"))
}

func TestPackagesStep_UpdateFailureIsFatal(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.FailOn["sudo apt-get update"] = assert.AnError
	env := newTestEnv(t, runner, aptPlatform)

	err := NewPackagesStep().Run(context.Background(), env)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCommandFailed, errors.CodeOf(err))
	assert.False(t, errors.IsSoft(err))
}

func TestPackagesStep_SingleFailureIsSoft(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"rg", "fzf"}
	runner.FailOn["sudo apt-get install -y fzf"] = assert.AnError
	env := newTestEnv(t, runner, aptPlatform)

	err := NewPackagesStep().Run(context.Background(), env)
	require.Error(t, err)
	assert.True(t, errors.IsSoft(err))
	assert.Equal(t, errors.ErrToolInstall, errors.CodeOf(err))
	// The other missing tool was still attempted
	assert.True(t, runner.CalledWith("sudo apt-get install -y ripgrep"))
}

func TestPackagesStep_Check(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := newTestEnv(t, runner, aptPlatform)

	ok, err := NewPackagesStep().Check(context.Background(), env)
	require.NoError(t, err)
	assert.True(t, ok)

	runner.Missing = []string{"tmux"}
	ok, err = NewPackagesStep().Check(context.Background(), env)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLanguageStep_InstallsManagerViaBrew(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"pyenv", "poetry"}
	env := newTestEnv(t, runner, brewPlatform)

	err := NewLanguageStep("python", "Python").Run(context.Background(), env)
	require.NoError(t, err)

	assert.True(t, runner.CalledWith("brew install pyenv"))
	assert.True(t, runner.CalledWith("python3 -m pip install --user poetry"))
}

func TestLanguageStep_InstallsManagerViaCurlOnLinux(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"pyenv"}
	env := newTestEnv(t, runner, aptPlatform)

	err := NewLanguageStep("python", "Python").Run(context.Background(), env)
	require.NoError(t, err)

	assert.True(t, runner.CalledWith("bash -c curl -fsSL https://pyenv.run | bash"))
}

func TestLanguageStep_MissingRuntimeFails(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"ruby"}
	env := newTestEnv(t, runner, aptPlatform)

	err := NewLanguageStep("ruby", "Ruby").Run(context.Background(), env)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCommandMissing, errors.CodeOf(err))
}

func TestLanguageStep_GemAndNpmInstallers(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"rubocop", "tsc"}
	env := newTestEnv(t, runner, aptPlatform)
	// nvm probing goes through the filesystem, not PATH
	testutil.CreateFile(t, env.Paths.HomeDir(), ".nvm/nvm.sh", "# nvm")

	require.NoError(t, NewLanguageStep("ruby", "Ruby").Run(context.Background(), env))
	assert.True(t, runner.CalledWith("gem install rubocop"))

	require.NoError(t, NewLanguageStep("node", "Node.js").Run(context.Background(), env))
	assert.True(t, runner.CalledWith("npm install -g typescript"))
}

func TestLanguageStep_ToolFailureIsSoft(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Missing = []string{"black", "mypy"}
	runner.FailOn["python3 -m pip install --user black"] = assert.AnError
	env := newTestEnv(t, runner, aptPlatform)

	err := NewLanguageStep("python", "Python").Run(context.Background(), env)
	require.Error(t, err)
	assert.True(t, errors.IsSoft(err))
	assert.True(t, runner.CalledWith("python3 -m pip install --user mypy"))
}

func TestLanguageStep_CheckNvmByInstallDir(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := newTestEnv(t, runner, aptPlatform)
	step := NewLanguageStep("node", "Node.js")

	ok, err := step.Check(context.Background(), env)
	require.NoError(t, err)
	assert.False(t, ok, "nvm dir missing means unsatisfied")

	testutil.CreateFile(t, env.Paths.HomeDir(), ".nvm/nvm.sh", "# nvm")
	ok, err = step.Check(context.Background(), env)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConfigsStep_Run(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := newTestEnv(t, runner, aptPlatform)

	require.NoError(t, NewConfigsStep().Run(context.Background(), env))
	assert.True(t, testutil.FileExists(t, filepath.Join(env.Paths.HomeDir(), ".zshrc")))
	assert.True(t, testutil.FileExists(t, filepath.Join(env.Paths.HomeDir(), ".tmux.conf")))
}

func TestTemplatesStep_Run(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := newTestEnv(t, runner, aptPlatform)

	require.NoError(t, NewTemplatesStep().Run(context.Background(), env))
	assert.True(t, testutil.FileExists(t,
		filepath.Join(env.Paths.TemplatesDir("python"), "python-project.sh")))
}

func TestFunctionsStep_Run(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := newTestEnv(t, runner, aptPlatform)

	require.NoError(t, NewFunctionsStep().Run(context.Background(), env))

	assert.True(t, testutil.FileExists(t, env.Paths.FunctionsPath()))
	rc := testutil.ReadFile(t, filepath.Join(env.Paths.HomeDir(), ".zshrc"))
	assert.Contains(t, rc, "functions.sh")
}
