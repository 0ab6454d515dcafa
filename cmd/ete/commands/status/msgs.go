package status

// Message constants
const (
	MsgShort = "Show the recorded state of each setup step"
	MsgLong  = `Shows each setup step's recorded state: done, failed, skipped or
pending. Failed steps include the recorded error so you know what to
fix before re-running with 'ete install --recover'.`

	MsgExample = `  ete status`
)
