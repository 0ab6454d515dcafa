// Package genconfig implements `ete genconfig`.
package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/config"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultConfigContent()

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			p, err := paths.New("")
			if err != nil {
				return err
			}

			dest := filepath.Join(p.ConfigDir(), config.ConfigFileName)
			if _, err := os.Stat(dest); err == nil {
				return fmt.Errorf("%s already exists; remove it first or edit it in place", dest)
			}
			if err := os.MkdirAll(p.ConfigDir(), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the config file instead of printing it")

	return cmd
}
