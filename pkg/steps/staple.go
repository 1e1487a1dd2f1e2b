package steps

import (
	"log/slog"
	"path/filepath"
)

type stapleStep struct {
	name string
}

// NewStapleStep creates the staple-and-validate step.
func NewStapleStep(name string) Step {
	return &stapleStep{name: name}
}

func (s *stapleStep) Name() string { return s.name }

func (s *stapleStep) Run(ctx StepContext) error {
	dmgName, err := ImageFileName(ctx.Config)
	if err != nil {
		return err
	}
	dmgPath := filepath.Join(ctx.Config.OutputDir(), dmgName)

	slog.Info("stapling notarization ticket", "step", s.name, "image", dmgPath)
	if err := ctx.Runner.Run("xcrun", "stapler", "staple", dmgPath); err != nil {
		return err
	}

	slog.Info("validating stapled image", "step", s.name, "image", dmgPath)
	return ctx.Runner.Run("xcrun", "stapler", "validate", dmgPath)
}
