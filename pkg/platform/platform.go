// Package platform detects the host operating system and its package
// manager, and provides the package-manager invocations the installer
// steps shell out to. Package managers are invoked, never modeled.
package platform

import (
	"runtime"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
)

// OS identifies a supported operating system
type OS string

const (
	OSDarwin OS = "darwin"
	OSLinux  OS = "linux"
)

// PackageManager identifies the system package manager
type PackageManager string

const (
	PkgBrew PackageManager = "brew"
	PkgApt  PackageManager = "apt"
)

// Platform describes the detected host
type Platform struct {
	OS             OS
	PackageManager PackageManager
}

// Detect identifies the host OS and package manager. macOS requires
// Homebrew to be present already; Linux requires apt-get. Anything
// else is an unsupported host.
func Detect(runner CommandRunner) (Platform, error) {
	return detect(runtime.GOOS, runner)
}

func detect(goos string, runner CommandRunner) (Platform, error) {
	switch goos {
	case "darwin":
		if !HasCommand(runner, "brew") {
			return Platform{}, errors.New(errors.ErrNoPackageMgr,
				"Homebrew is required on macOS; install it from https://brew.sh first")
		}
		return Platform{OS: OSDarwin, PackageManager: PkgBrew}, nil
	case "linux":
		if !HasCommand(runner, "apt-get") {
			return Platform{}, errors.New(errors.ErrNoPackageMgr,
				"apt-get not found; only Debian/Ubuntu-based distributions are supported")
		}
		return Platform{OS: OSLinux, PackageManager: PkgApt}, nil
	default:
		return Platform{}, errors.Newf(errors.ErrUnsupportedOS, "unsupported operating system: %s", goos)
	}
}

// InstallCommand returns the command line that installs a package
func (p Platform) InstallCommand(pkg string) (string, []string) {
	switch p.PackageManager {
	case PkgBrew:
		return "brew", []string{"install", pkg}
	default:
		return "sudo", []string{"apt-get", "install", "-y", pkg}
	}
}

// UpdateCommand returns the command line that refreshes package metadata
func (p Platform) UpdateCommand() (string, []string) {
	switch p.PackageManager {
	case PkgBrew:
		return "brew", []string{"update"}
	default:
		return "sudo", []string{"apt-get", "update"}
	}
}
