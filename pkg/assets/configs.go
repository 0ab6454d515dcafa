package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
)

// backupTimeFormat names backups like zshrc.bak.20240101-120000
const backupTimeFormat = "20060102-150405"

// ConfigInstaller copies embedded dotfile configs into the home
// directory, backing up whatever they replace.
type ConfigInstaller struct {
	paths         paths.Paths
	backupEnabled bool
}

// NewConfigInstaller creates a ConfigInstaller
func NewConfigInstaller(p paths.Paths, backupEnabled bool) *ConfigInstaller {
	return &ConfigInstaller{paths: p, backupEnabled: backupEnabled}
}

// InstallAll writes every config file. Re-runs against identical
// content are no-ops, so the step is safe to repeat.
func (c *ConfigInstaller) InstallAll() error {
	for _, cf := range ConfigFiles {
		if err := c.Install(cf); err != nil {
			return err
		}
	}
	return nil
}

// Install writes a single config file with backup semantics
func (c *ConfigInstaller) Install(cf ConfigFile) error {
	logger := logging.GetLogger("assets.configs")

	content, err := configContent(cf.Asset)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "missing embedded config %s", cf.Asset)
	}

	dest := filepath.Join(c.paths.HomeDir(), cf.Dest)

	existing, err := os.ReadFile(dest)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			logger.Debug().Str("dest", dest).Msg("Config already up to date")
			return nil
		}
		if c.backupEnabled {
			if err := c.backup(dest, existing); err != nil {
				return err
			}
		}
	case !os.IsNotExist(err):
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read existing config %s", dest)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", dest)
	}
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write config %s", dest)
	}

	logger.Info().Str("dest", dest).Msg("Installed config")
	return nil
}

// backup saves the previous content under the backups directory
func (c *ConfigInstaller) backup(dest string, content []byte) error {
	backupDir := c.paths.BackupsDir()
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create backups directory")
	}

	name := fmt.Sprintf("%s.bak.%s", filepath.Base(dest), time.Now().Format(backupTimeFormat))
	backupPath := filepath.Join(backupDir, name)
	// Two backups of the same file within a second must not clobber
	// each other.
	for i := 1; ; i++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = filepath.Join(backupDir, fmt.Sprintf("%s.%d", name, i))
	}
	if err := os.WriteFile(backupPath, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrBackup, "failed to back up %s", dest)
	}

	logger := logging.GetLogger("assets.configs")
	logger.Info().
		Str("original", dest).
		Str("backup", backupPath).
		Msg("Backed up existing config")
	return nil
}
