package steps

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/systemstart/macship/pkg/api"
)

// Fixed disk image layout: window position and the icon coordinates for
// the application bundle and the /Applications drop link.
const (
	dmgWindowPosX = 200
	dmgWindowPosY = 120
	dmgAppIconX   = 150
	dmgAppIconY   = 185
	dmgDropLinkX  = 450
	dmgDropLinkY  = 185
)

type packageStep struct {
	name string
}

// NewPackageStep creates the disk image build step.
func NewPackageStep(name string) Step {
	return &packageStep{name: name}
}

func (s *packageStep) Name() string { return s.name }

func (s *packageStep) Run(ctx StepContext) error {
	cfg := ctx.Config

	dmgName, err := ImageFileName(cfg)
	if err != nil {
		return err
	}
	dmgPath := filepath.Join(cfg.OutputDir(), dmgName)

	if err := os.Remove(dmgPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale image %s: %w", dmgPath, err)
	}

	width, height := parseWindowSize(cfg.Get(api.KeyWindowSize))
	iconSize := parseIconSize(cfg.Get(api.KeyIconSize))
	appBundle := cfg.AppBundleName()

	args := []string{
		"--volname", cfg.VolumeName(),
		"--window-pos", strconv.Itoa(dmgWindowPosX), strconv.Itoa(dmgWindowPosY),
		"--window-size", strconv.Itoa(width), strconv.Itoa(height),
		"--icon-size", strconv.Itoa(iconSize),
		"--icon", appBundle, strconv.Itoa(dmgAppIconX), strconv.Itoa(dmgAppIconY),
		"--hide-extension", appBundle,
		"--app-drop-link", strconv.Itoa(dmgDropLinkX), strconv.Itoa(dmgDropLinkY),
	}

	if bg := cfg.Get(api.KeyBackgroundImage); bg != "" {
		if _, err := os.Stat(bg); err == nil {
			args = append(args, "--background", bg)
		} else {
			slog.Warn("background image not found, skipping", "step", s.name, "path", bg)
		}
	}

	args = append(args, dmgPath, cfg.SourceDir())

	slog.Info("building disk image", "step", s.name, "image", dmgPath)
	return ctx.Runner.Run("create-dmg", args...)
}

// ImageFileName renders the configured image name template for the
// release, e.g. "{{ .ProjectName }}.dmg".
func ImageFileName(cfg *api.Config) (string, error) {
	name, err := api.RenderName(cfg.Get(api.KeyDMGName), cfg.TemplateData())
	if err != nil {
		return "", err
	}
	return name, nil
}

// parseWindowSize parses a "width,height" value. Each half falls back
// to its default independently when missing or malformed.
func parseWindowSize(s string) (int, int) {
	width, height := api.DefaultWindowWidth, api.DefaultWindowHeight

	parts := strings.SplitN(s, ",", 2)
	if len(parts) > 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && v > 0 {
			width = v
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && v > 0 {
			height = v
		}
	}
	return width, height
}

func parseIconSize(s string) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v > 0 {
		return v
	}
	return api.DefaultIconSize
}
