package main

import (
	"os"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/cmd/ete/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
