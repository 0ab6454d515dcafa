// Package installer sequences setup steps: it resolves the plan,
// prompts for optional steps, runs each step with logging and state
// recording, and applies one consistent failure policy. Recovery mode
// re-runs a partially failed install by skipping steps already
// recorded done.
package installer

import (
	"context"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/prompt"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/state"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/steps"
)

// Options controls a single install run
type Options struct {
	// Steps restricts the plan to the named steps. Empty means all.
	Steps []string

	// Recover skips steps the state store records as done.
	Recover bool

	// Force re-runs steps even when their Check reports satisfied.
	Force bool

	// DryRun plans and reports without executing or touching state.
	DryRun bool

	// ContinueOnError keeps going past required-step failures.
	ContinueOnError bool

	// Prompter answers the optional-step questions.
	Prompter prompt.Prompter
}

// StepResult is the outcome of one planned step
type StepResult struct {
	Step   string
	Status state.Status
	Err    error
}

// RunResult summarizes an install run
type RunResult struct {
	Results []StepResult
	DryRun  bool
}

// Failed reports whether any step failed
func (r *RunResult) Failed() bool {
	for _, res := range r.Results {
		if res.Status == state.StatusFailed {
			return true
		}
	}
	return false
}

// Installer runs install plans against a host
type Installer struct {
	env   *steps.Env
	store *state.Store
}

// New creates an Installer
func New(env *steps.Env, store *state.Store) *Installer {
	return &Installer{env: env, store: store}
}

// Run executes the install plan. The returned error is non-nil only
// for run-level failures (lock held, state unreadable, required step
// failed); per-step outcomes are in the result.
func (i *Installer) Run(ctx context.Context, opts Options) (*RunResult, error) {
	logger := logging.GetLogger("installer")

	plan, err := i.resolvePlan(opts.Steps)
	if err != nil {
		return nil, err
	}

	if err := i.store.Lock(); err != nil {
		return nil, err
	}
	defer i.store.Unlock()

	st, err := i.store.Load()
	if err != nil {
		return nil, err
	}

	prompter := opts.Prompter
	if prompter == nil {
		prompter = &prompt.StaticPrompter{Answer: true}
	}

	result := &RunResult{DryRun: opts.DryRun}
	var abort error

	for _, step := range plan {
		name := step.Name()

		if abort != nil {
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusPending})
			continue
		}

		// Recovery resolves before the offer: a step already recorded
		// done stays done, never re-prompted.
		if opts.Recover && st.IsDone(name) && !opts.Force {
			logger.Info().Str("step", name).Msg("Already done, recovering past it")
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusDone})
			continue
		}

		// Optional steps are offered, not imposed. Explicitly named
		// steps were already chosen on the command line.
		if step.Optional() && len(opts.Steps) == 0 {
			if !i.offered(name) {
				logger.Debug().Str("step", name).Msg("Not in configured languages, skipping")
				i.record(st, opts, func() { st.MarkSkipped(name) })
				result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusSkipped})
				continue
			}
			ok, err := prompter.Confirm("Set up "+step.Description()+"?", true)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read prompt answer")
			}
			if !ok {
				logger.Info().Str("step", name).Msg("Declined, skipping")
				i.record(st, opts, func() { st.MarkSkipped(name) })
				result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusSkipped})
				continue
			}
		}

		if !opts.Force {
			satisfied, err := step.Check(ctx, i.env)
			if err == nil && satisfied {
				logger.Info().Str("step", name).Msg("Already satisfied")
				i.record(st, opts, func() { st.MarkDone(name) })
				result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusDone})
				continue
			}
		}

		if opts.DryRun {
			logger.Info().Str("step", name).Msg("Would run (dry-run)")
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusPending})
			continue
		}

		logger.Info().Str("step", name).Str("description", step.Description()).Msg("Running step")
		st.MarkRunning(name)
		if err := i.store.Save(st); err != nil {
			return nil, err
		}

		runErr := step.Run(ctx, i.env)
		switch {
		case runErr == nil:
			st.MarkDone(name)
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusDone})

		case errors.IsSoft(runErr):
			// Partial failure inside the step; the step itself is
			// retryable so it stays failed in state.
			logger.Warn().Err(runErr).Str("step", name).Msg("Step finished with warnings, continuing")
			st.MarkFailed(name, runErr)
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusFailed, Err: runErr})

		case step.Optional() || opts.ContinueOnError:
			logger.Error().Err(runErr).Str("step", name).Msg("Step failed, continuing")
			st.MarkFailed(name, runErr)
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusFailed, Err: runErr})

		default:
			logger.Error().Err(runErr).Str("step", name).Msg("Required step failed, aborting")
			st.MarkFailed(name, runErr)
			result.Results = append(result.Results, StepResult{Step: name, Status: state.StatusFailed, Err: runErr})
			abort = errors.Wrapf(runErr, errors.ErrStepFailed,
				"required step %q failed; fix the cause and re-run `ete install --recover`", name)
		}

		if err := i.store.Save(st); err != nil {
			return nil, err
		}
	}

	if !opts.DryRun {
		if err := i.store.Save(st); err != nil {
			return nil, err
		}
	}

	return result, abort
}

// resolvePlan returns the steps to run in canonical order
func (i *Installer) resolvePlan(names []string) ([]steps.Step, error) {
	all := steps.All()
	if len(names) == 0 {
		return all, nil
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := steps.ByName(name); err != nil {
			return nil, err
		}
		requested[name] = true
	}

	var plan []steps.Step
	for _, s := range all {
		if requested[s.Name()] {
			plan = append(plan, s)
		}
	}
	return plan, nil
}

// offered reports whether an optional step is in the configured
// language list.
func (i *Installer) offered(name string) bool {
	for _, lang := range i.env.Config.Install.Languages {
		if lang == name {
			return true
		}
	}
	return false
}

// record applies a state mutation unless this is a dry run
func (i *Installer) record(st *state.State, opts Options, fn func()) {
	if opts.DryRun {
		return
	}
	fn()
}
