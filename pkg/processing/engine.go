package processing

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/macship/pkg/api"
	"github.com/systemstart/macship/pkg/steps"
)

// Options carries the injected capabilities the steps run against.
type Options struct {
	Runner      steps.CommandRunner
	Confirmer   steps.Confirmer
	Credentials steps.CredentialStore
	Reporter    *Reporter
}

// Run executes the configured steps strictly in order. The first
// failure stops the run; earlier steps' side effects stay in place.
// Step names are resolved lazily, one at a time, so an unknown name
// late in the list only fails once the run reaches it.
func Run(cfg *api.Config, opts Options) error {
	reporter := opts.Reporter
	reporter.Header(cfg.ProjectName())

	sctx := steps.StepContext{
		Config:      cfg,
		Runner:      opts.Runner,
		Confirmer:   opts.Confirmer,
		Credentials: opts.Credentials,
	}

	for i, name := range cfg.Steps {
		reporter.Progress(i)

		step, err := steps.NewStep(name)
		if err != nil {
			reporter.Failure(name, err)
			return fmt.Errorf("step %q failed: %w", name, err)
		}

		slog.Info("running step", "step", name, "position", i+1, "total", len(cfg.Steps))
		if err := step.Run(sctx); err != nil {
			reporter.Failure(name, err)
			return fmt.Errorf("step %q failed: %w", name, err)
		}
	}

	reporter.Success()
	return nil
}
