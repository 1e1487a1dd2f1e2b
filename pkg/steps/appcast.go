package steps

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/systemstart/macship/pkg/api"
)

// sparkleProbeDirs are the conventional Sparkle distribution locations
// tried when sparkle_dir is not configured, in order.
func sparkleProbeDirs() []string {
	return []string{
		filepath.Join(os.Getenv("HOME"), "Sparkle"),
		"/usr/local/opt/sparkle",
		"/opt/homebrew/opt/sparkle",
	}
}

type appcastStep struct {
	name string
}

// NewAppcastStep creates the update-feed publishing step.
func NewAppcastStep(name string) Step {
	return &appcastStep{name: name}
}

func (s *appcastStep) Name() string { return s.name }

func (s *appcastStep) Run(ctx StepContext) error {
	dir, err := resolveSparkleDir(ctx.Config)
	if err != nil {
		return err
	}

	generator := filepath.Join(dir, "bin", "generate_appcast")
	outDir := ctx.Config.OutputDir()

	slog.Info("generating appcast", "step", s.name, "generator", generator, "dir", outDir)
	return ctx.Runner.Run(generator, outDir)
}

// resolveSparkleDir returns the configured Sparkle directory, or the
// first conventional install location that exists.
func resolveSparkleDir(cfg *api.Config) (string, error) {
	if dir := cfg.Get(api.KeySparkleDir); dir != "" {
		return dir, nil
	}

	for _, dir := range sparkleProbeDirs() {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir, nil
		}
	}

	return "", fmt.Errorf("sparkle distribution not found: set sparkle_dir or install to one of %v",
		sparkleProbeDirs())
}
