package assets

import (
	"os"
	"path/filepath"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
)

// InstallTemplates writes the project-template generator scripts to
// ~/.local/share/<lang>-templates/<lang>-project.sh, executable.
func InstallTemplates(p paths.Paths) error {
	logger := logging.GetLogger("assets.templates")

	for _, lang := range TemplateLanguages {
		content, err := templateContent(lang)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileNotFound, "missing embedded template for %s", lang)
		}

		dir := p.TemplatesDir(lang)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create template directory %s", dir)
		}

		dest := filepath.Join(dir, lang+"-project.sh")
		if err := os.WriteFile(dest, content, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write template %s", dest)
		}

		logger.Info().Str("language", lang).Str("dest", dest).Msg("Installed project template")
	}

	return nil
}

// InstallFunctions writes the shell functions file to ~/.local/bin
func InstallFunctions(p paths.Paths) error {
	dir := p.LocalBinDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}

	dest := p.FunctionsPath()
	if err := os.WriteFile(dest, FunctionsScript(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}

	logger := logging.GetLogger("assets.functions")
	logger.Info().Str("dest", dest).Msg("Installed shell functions")
	return nil
}
