// Package config loads ete's configuration: embedded defaults, an
// optional user config file, and ETE_* environment overrides, merged
// in that order with koanf.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
)

// ConfigFileName is the user configuration file inside the config dir
const ConfigFileName = "config.toml"

// EnvPrefix is the prefix for environment variable overrides,
// e.g. ETE_INSTALL_ASSUME_YES=true.
const EnvPrefix = "ETE_"

// Config is the resolved ete configuration
type Config struct {
	Install InstallConfig `koanf:"install"`
	Shell   ShellConfig   `koanf:"shell"`
	Backup  BackupConfig  `koanf:"backup"`
}

// InstallConfig controls installer behavior
type InstallConfig struct {
	Languages       []string `koanf:"languages"`
	ContinueOnError bool     `koanf:"continue_on_error"`
	AssumeYes       bool     `koanf:"assume_yes"`
}

// ShellConfig controls which shell rc file is managed
type ShellConfig struct {
	Default string `koanf:"default"`
}

// BackupConfig controls config-file backups
type BackupConfig struct {
	Enabled bool `koanf:"enabled"`
}

// Load resolves configuration from defaults, the user config file in
// configDir (if present), and the environment.
func Load(configDir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config file, if it exists
	if configDir != "" {
		path := filepath.Join(configDir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
		}
	}

	// 3. Environment overrides: ETE_INSTALL_ASSUME_YES -> install.assume_yes.
	// Only the first underscore separates section from field; field names
	// keep theirs (assume_yes, continue_on_error).
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}
