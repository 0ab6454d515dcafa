// Package install implements `ete install`.
package install

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/catalog"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/config"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/installer"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/paths"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/platform"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/prompt"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/state"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/steps"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/style"
)

// NewCommand creates the install command
func NewCommand() *cobra.Command {
	var (
		dryRun          bool
		recoverMode     bool
		force           bool
		yes             bool
		skipLangs       bool
		continueOnError bool
		langs           []string
	)

	cmd := &cobra.Command{
		Use:     "install [steps...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := platform.NewExecRunner()

			plat, err := platform.Detect(runner)
			if err != nil {
				return err
			}

			p, err := paths.New("")
			if err != nil {
				return err
			}

			cfg, err := config.Load(p.ConfigDir())
			if err != nil {
				return err
			}
			if len(langs) > 0 {
				cfg.Install.Languages = langs
			}
			if continueOnError {
				cfg.Install.ContinueOnError = true
			}

			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			env := &steps.Env{
				Platform: plat,
				Runner:   runner,
				Paths:    p,
				Catalog:  cat,
				Config:   cfg,
			}
			store := state.NewStore(p.StateFilePath(), p.LockFilePath())

			opts := installer.Options{
				Steps:           args,
				Recover:         recoverMode,
				Force:           force,
				DryRun:          dryRun,
				ContinueOnError: cfg.Install.ContinueOnError,
				Prompter:        choosePrompter(yes || cfg.Install.AssumeYes, skipLangs, len(langs) > 0),
			}

			result, runErr := installer.New(env, store).Run(cmd.Context(), opts)

			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
			}
			if runErr != nil {
				return runErr
			}
			if result.Failed() {
				return fmt.Errorf("install finished with failures; see `ete status` and the log at %s", p.LogFilePath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the plan without executing it")
	cmd.Flags().BoolVar(&recoverMode, "recover", false, "Resume a previous run, skipping completed steps")
	cmd.Flags().BoolVar(&force, "force", false, "Re-run steps even when already satisfied")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Answer yes to all prompts")
	cmd.Flags().BoolVar(&skipLangs, "skip-langs", false, "Skip all optional language toolchains")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Keep going when a required step fails")
	cmd.Flags().StringSliceVar(&langs, "langs", nil, "Language toolchains to set up without prompting (python,node,ruby)")

	cmd.MarkFlagsMutuallyExclusive("yes", "skip-langs")
	cmd.MarkFlagsMutuallyExclusive("langs", "skip-langs")

	return cmd
}

// choosePrompter picks how optional-step questions get answered.
// Interactive terminals get real prompts; everything else resolves to
// a fixed answer so the run never blocks.
func choosePrompter(assumeYes, skipLangs, langsFlagged bool) prompt.Prompter {
	switch {
	case skipLangs:
		return &prompt.StaticPrompter{Answer: false}
	case assumeYes || langsFlagged:
		return &prompt.StaticPrompter{Answer: true}
	case prompt.IsInteractive():
		return prompt.NewConsolePrompter()
	default:
		// Non-interactive without --yes: don't silently install
		// multi-hundred-megabyte toolchains.
		return &prompt.StaticPrompter{Answer: false}
	}
}

// renderResult converts an install result into the summary table
func renderResult(result *installer.RunResult) string {
	rows := make([]style.SummaryRow, 0, len(result.Results))
	for _, res := range result.Results {
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		rows = append(rows, style.SummaryRow{Step: res.Step, Status: res.Status, Detail: detail})
	}
	return style.RenderSummaryTable(rows)
}
