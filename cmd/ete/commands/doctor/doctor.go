// Package doctor implements `ete doctor`.
package doctor

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/doctor"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
)

// NewCommand creates the doctor command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
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

			checker := doctor.New(platform.NewExecRunner(), p)
			results := checker.RunAll(cmd.Context())

			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), renderCheck(r))
			}

			if doctor.HasCriticalFailures(results) {
				return fmt.Errorf("preflight checks failed")
			}
			return nil
		},
	}
}

// renderCheck formats one check result line
func renderCheck(r doctor.CheckResult) string {
	var styled string
	switch r.Status {
	case doctor.StatusPass:
		styled = pterm.NewStyle(pterm.FgGreen).Sprint("PASS")
	case doctor.StatusWarn:
		styled = pterm.NewStyle(pterm.FgYellow).Sprint("WARN")
	default:
		styled = pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("FAIL")
	}
	return fmt.Sprintf("%s  %-16s %s", styled, r.Name, r.Message)
}
