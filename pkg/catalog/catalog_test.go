package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, step := range []string{"packages", "python", "node", "ruby"} {
		assert.Contains(t, c.Steps, step, "embedded catalog must cover step %s", step)
		assert.NotEmpty(t, c.Steps[step].Tools)
	}

	assert.Equal(t, "pyenv", c.Steps["python"].Manager)
	assert.Equal(t, "nvm", c.Steps["node"].Manager)
	assert.Equal(t, "rbenv", c.Steps["ruby"].Manager)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("steps: [not a map"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCatalogParse, errors.CodeOf(err))

	_, err = Parse([]byte("steps: {}"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCatalogInvalid, errors.CodeOf(err))

	_, err = Parse([]byte("steps:\n  packages:\n    tools:\n      - check: rg\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCatalogInvalid, errors.CodeOf(err))
}

func TestTool_PackageFor(t *testing.T) {
	tool := Tool{Name: "fd", Apt: "fd-find"}

	assert.Equal(t, "fd", tool.PackageFor(platform.PkgBrew))
	assert.Equal(t, "fd-find", tool.PackageFor(platform.PkgApt))

	plain := Tool{Name: "jq"}
	assert.Equal(t, "jq", plain.PackageFor(platform.PkgApt))
}

func TestTool_CheckCommand(t *testing.T) {
	assert.Equal(t, "nvim", Tool{Name: "neovim", Check: "nvim"}.CheckCommand())
	assert.Equal(t, "jq", Tool{Name: "jq"}.CheckCommand())
}

func TestStepTools_AbsentStep(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	st := c.StepTools("configs")
	assert.Empty(t, st.Tools)
}
