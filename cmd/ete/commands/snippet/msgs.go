package snippet

// Message constants
const (
	MsgShort = "Print the rc-file snippet that loads the shell functions"
	MsgLong  = `Prints the block ete appends to your shell rc file to source the
installed helper functions. The install command adds it automatically;
this is for wiring it up by hand or into another rc file.`

	MsgExample = `  # Print the snippet
  ete snippet

  # Append it to a different rc file
  ete snippet >> ~/.bashrc`
)
