// Package commands assembles the ete command tree.
package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/cmd/ete/commands/doctor"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/cmd/ete/commands/genconfig"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/cmd/ete/commands/install"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/cmd/ete/commands/snippet"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/cmd/ete/commands/status"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/internal/version"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "ete",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(install.NewCommand())
	rootCmd.AddCommand(status.NewCommand())
	rootCmd.AddCommand(doctor.NewCommand())
	rootCmd.AddCommand(snippet.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetCompletionCommandGroupID("misc")
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ete version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
