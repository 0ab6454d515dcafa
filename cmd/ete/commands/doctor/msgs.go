package doctor

// Message constants
const (
	MsgShort = "Check that this machine can be set up"
	MsgLong  = `Runs preflight checks before an install: supported OS and package
manager, required commands on PATH, and writable directories. Exits
non-zero when a required check fails.`

	MsgExample = `  ete doctor`
)
