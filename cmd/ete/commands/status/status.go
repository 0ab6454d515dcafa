// Package status implements `ete status`.
package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/state"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/steps"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/style"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New("")
			if err != nil {
				return err
			}

			store := state.NewStore(p.StateFilePath(), p.LockFilePath())
			st, err := store.Load()
			if err != nil {
				return err
			}

			rows := make([]style.SummaryRow, 0, len(steps.Names()))
			for _, name := range steps.Names() {
				rows = append(rows, style.SummaryRow{
					Step:   name,
					Status: st.StatusOf(name),
					Detail: st.Steps[name].Error,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderSummaryTable(rows))
			return nil
		},
	}
}
