// Package assets carries the files ete drops onto the machine:
// dotfile configs, project-template generator scripts, and the shell
// functions file. The contents are opaque payloads; this package owns
// getting them onto disk safely and idempotently.
package assets

import (
	"embed"
)

//go:embed embedded/configs
var configsFS embed.FS

//go:embed embedded/templates
var templatesFS embed.FS

//go:embed embedded/shell/functions.sh
var functionsScript []byte

// ConfigFile maps an embedded config to its destination in the home
// directory.
type ConfigFile struct {
	// Asset is the path inside the embedded configs tree.
	Asset string

	// Dest is the destination path relative to the home directory.
	Dest string
}

// ConfigFiles lists the dotfiles the configs step installs, in the
// order the original installer copied them.
var ConfigFiles = []ConfigFile{
	{Asset: "embedded/configs/zshrc", Dest: ".zshrc"},
	{Asset: "embedded/configs/tmux.conf", Dest: ".tmux.conf"},
	{Asset: "embedded/configs/gitconfig", Dest: ".gitconfig"},
	{Asset: "embedded/configs/nvim/init.lua", Dest: ".config/nvim/init.lua"},
}

// TemplateLanguages lists the languages with a project-template
// generator script.
var TemplateLanguages = []string{"python", "node", "ruby"}

// configContent returns an embedded config's bytes
func configContent(asset string) ([]byte, error) {
	return configsFS.ReadFile(asset)
}

// templateContent returns a language's generator script bytes
func templateContent(language string) ([]byte, error) {
	return templatesFS.ReadFile("embedded/templates/" + language + "-project.sh")
}

// FunctionsScript returns the shell functions file content
func FunctionsScript() []byte {
	return functionsScript
}
