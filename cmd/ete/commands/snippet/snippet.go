// Package snippet implements `ete snippet`.
package snippet

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/assets"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
)

// NewCommand creates the snippet command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "snippet",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New("")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), assets.Snippet(p.FunctionsPath()))
			return nil
		},
	}
}
