// Package paths provides centralized path handling for ete.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
)

// Environment variable names
const (
	// EnvEteDataDir overrides the XDG data directory for ete
	EnvEteDataDir = "ETE_DATA_DIR"

	// EnvEteConfigDir overrides the XDG config directory for ete
	EnvEteConfigDir = "ETE_CONFIG_DIR"

	// EnvEteStateDir overrides the XDG state directory for ete
	EnvEteStateDir = "ETE_STATE_DIR"
)

// Directory and file names fixed by ete's on-disk layout. These are not
// user-configurable: state written by one version must be readable by the
// next.
const (
	// EteDirName is the directory name for ete-specific files
	EteDirName = "ete"

	// StateFileName is the name of the installer state file
	StateFileName = "state.toml"

	// LockFileName is the name of the lock file guarding concurrent runs
	LockFileName = ".install.lock"

	// LogFileName is the name of the append-only run log
	LogFileName = "install_log.txt"

	// BackupsDir is the subdirectory for config backups
	BackupsDir = "backups"

	// FunctionsFileName is the installed shell functions file
	FunctionsFileName = "functions.sh"
)

// Paths provides centralized path management for ete
type Paths interface {
	HomeDir() string
	ConfigDir() string
	DataDir() string
	StateDir() string
	StateFilePath() string
	LockFilePath() string
	LogFilePath() string
	BackupsDir() string
	TemplatesDir(language string) string
	LocalBinDir() string
	FunctionsPath() string
	RCFilePath(shell string) string
	NvimConfigDir() string
}

type paths struct {
	home      string
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance. The home directory may be overridden
// for tests; pass "" to use the current user's home.
func New(home string) (Paths, error) {
	p := &paths{}

	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
		}
		home = h
	}
	p.home = home

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvEteDataDir); dataDir != "" {
		p.xdgData = p.expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, EteDirName)
	}

	if configDir := os.Getenv(EnvEteConfigDir); configDir != "" {
		p.xdgConfig = p.expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, EteDirName)
	}

	// adrg/xdg exposes StateHome since v0.4
	if stateDir := os.Getenv(EnvEteStateDir); stateDir != "" {
		p.xdgState = p.expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, EteDirName)
	}
}

func (p *paths) HomeDir() string   { return p.home }
func (p *paths) ConfigDir() string { return p.xdgConfig }
func (p *paths) DataDir() string   { return p.xdgData }
func (p *paths) StateDir() string  { return p.xdgState }

func (p *paths) StateFilePath() string {
	return filepath.Join(p.xdgState, StateFileName)
}

func (p *paths) LockFilePath() string {
	return filepath.Join(p.xdgState, LockFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

func (p *paths) BackupsDir() string {
	return filepath.Join(p.xdgState, BackupsDir)
}

// TemplatesDir returns where project-template generator scripts live for a
// language, matching the layout the original installer used
// (~/.local/share/python-templates and friends).
func (p *paths) TemplatesDir(language string) string {
	return filepath.Join(p.home, ".local", "share", language+"-templates")
}

func (p *paths) LocalBinDir() string {
	return filepath.Join(p.home, ".local", "bin")
}

func (p *paths) FunctionsPath() string {
	return filepath.Join(p.LocalBinDir(), FunctionsFileName)
}

// RCFilePath returns the shell rc file ete appends its snippet to
func (p *paths) RCFilePath(shell string) string {
	switch shell {
	case "bash":
		return filepath.Join(p.home, ".bashrc")
	default:
		return filepath.Join(p.home, ".zshrc")
	}
}

func (p *paths) NvimConfigDir() string {
	return filepath.Join(p.home, ".config", "nvim")
}

// expandHome expands a leading ~/ against the instance home directory
func (p *paths) expandHome(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}

// ExpandHome expands a leading ~/ against the current user's home.
// Paths it cannot expand are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
