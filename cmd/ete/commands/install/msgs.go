package install

// Message constants
const (
	MsgShort = "Install and configure the terminal environment"
	MsgLong  = `The 'install' command is ete's primary entry point. It runs the setup
plan in order:
  - Core CLI tools through the system package manager
  - Optional language toolchains (Python, Node.js, Ruby), chosen
    interactively or via --langs
  - Shell, tmux, Neovim and git configuration files (existing files
    are backed up first)
  - Project scaffold templates and shell helper functions

Every step is recorded; a partially failed run can be resumed with
--recover, which skips steps already completed.`

	MsgExample = `  # Full interactive install
  ete install

  # Non-interactive, Python and Node.js only
  ete install --yes --langs python,node

  # Preview without changing anything
  ete install --dry-run

  # Resume after a partial failure
  ete install --recover

  # Run specific steps only
  ete install configs templates`
)
