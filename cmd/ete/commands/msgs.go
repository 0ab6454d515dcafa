package commands

// Message constants for the root command
const (
	MsgRootShort = "Bootstrap a terminal development environment"
	MsgRootLong  = `ete sets up a personal terminal development environment: core CLI
tools through the system package manager, zsh, tmux and Neovim
configuration, optional Python/Node.js/Ruby toolchains, project
scaffold templates, and shell helper functions.

Runs are recorded step by step, so a partially failed install can be
resumed with 'ete install --recover'.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
