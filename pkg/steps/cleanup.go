package steps

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/systemstart/macship/pkg/api"
)

type cleanupStep struct {
	name string
}

// NewCleanupStep creates the output-directory cleanup step.
func NewCleanupStep(name string) Step {
	return &cleanupStep{name: name}
}

func (s *cleanupStep) Name() string { return s.name }

func (s *cleanupStep) Run(ctx StepContext) error {
	outDir := ctx.Config.OutputDir()

	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		slog.Info("creating output directory", "step", s.name, "dir", outDir)
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return fmt.Errorf("creating output directory %s: %w", outDir, err)
		}
		return nil
	} else if err != nil {
		return fmt.Errorf("checking output directory %s: %w", outDir, err)
	}

	candidates, err := deletionCandidates(outDir, keepPatterns(ctx.Config))
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		slog.Info("nothing to delete", "step", s.name, "dir", outDir)
		return nil
	}

	prompt := fmt.Sprintf("Delete %d entries from %s (%s)?",
		len(candidates), outDir, strings.Join(candidates, ", "))
	if !ctx.Confirmer.Confirm(prompt) {
		return &api.ConfirmationDeclinedError{Step: s.name}
	}

	for _, name := range candidates {
		p := filepath.Join(outDir, name)
		slog.Info("deleting", "step", s.name, "path", p)
		if err := os.RemoveAll(p); err != nil {
			return fmt.Errorf("deleting %s: %w", p, err)
		}
	}

	return nil
}

// keepPatterns returns the glob patterns for entries cleanup preserves.
// The default keeps packaged application bundles (*.app).
func keepPatterns(cfg *api.Config) []string {
	var patterns []string
	for _, p := range strings.Split(cfg.Get(api.KeyKeep), ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// deletionCandidates lists the immediate children of dir that no keep
// pattern matches.
func deletionCandidates(dir string, keep []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading output directory %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if matchesAny(keep, entry.Name()) {
			continue
		}
		candidates = append(candidates, entry.Name())
	}
	return candidates, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			slog.Warn("invalid keep pattern", "pattern", pattern, "error", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
