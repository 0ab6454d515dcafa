package genconfig

// Message constants
const (
	MsgShort = "Print or write the default configuration"
	MsgLong  = `Prints the default TOML configuration with all settings documented.
With --write, saves it to the config directory so you can edit it.`

	MsgExample = `  # Inspect the defaults
  ete genconfig

  # Create ~/.config/ete/config.toml
  ete genconfig --write`
)
