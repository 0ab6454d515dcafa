// Package catalog defines which tools each setup step installs. The
// catalog ships embedded in the binary as YAML so the tool lists stay
// data, not code.
package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

//go:embed embedded/tools.yaml
var embeddedCatalog []byte

// Catalog maps step names to their tool lists
type Catalog struct {
	Steps map[string]StepTools `yaml:"steps"`
}

// StepTools describes what one step installs. Runtime and Manager are
// only set for language steps: the version manager is installed first,
// then the runtime is expected through it.
type StepTools struct {
	Runtime string `yaml:"runtime"`
	Manager string `yaml:"manager"`
	Tools   []Tool `yaml:"tools"`
}

// Tool is a single installable tool
type Tool struct {
	// Name is the canonical package name.
	Name string `yaml:"name"`

	// Brew and Apt override the package name per manager.
	Brew string `yaml:"brew"`
	Apt  string `yaml:"apt"`

	// Installer selects a language-level installer (pip, npm, gem).
	// Empty means the system package manager.
	Installer string `yaml:"installer"`

	// Check is the command probed to decide whether the tool is
	// already present. Defaults to Name.
	Check string `yaml:"check"`
}

// PackageFor returns the package name to pass to the given manager
func (t Tool) PackageFor(pm platform.PackageManager) string {
	switch pm {
	case platform.PkgBrew:
		if t.Brew != "" {
			return t.Brew
		}
	case platform.PkgApt:
		if t.Apt != "" {
			return t.Apt
		}
	}
	return t.Name
}

// CheckCommand returns the command probed for presence
func (t Tool) CheckCommand() string {
	if t.Check != "" {
		return t.Check
	}
	return t.Name
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse parses a catalog from raw YAML
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogParse, "failed to parse tool catalog")
	}
	if len(c.Steps) == 0 {
		return nil, errors.New(errors.ErrCatalogInvalid, "tool catalog has no steps")
	}
	for step, st := range c.Steps {
		for _, tool := range st.Tools {
			if tool.Name == "" {
				return nil, errors.Newf(errors.ErrCatalogInvalid, "step %q has a tool without a name", step)
			}
		}
	}
	return &c, nil
}

// StepTools returns the tool list for a step; absent steps get an
// empty list so config-only steps need no catalog entry.
func (c *Catalog) StepTools(step string) StepTools {
	return c.Steps[step]
}
