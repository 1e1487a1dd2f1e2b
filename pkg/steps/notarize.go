package steps

import (
	"log/slog"
	"path/filepath"

	"github.com/systemstart/macship/pkg/api"
)

type notarizeStep struct {
	name string
}

// NewNotarizeStep creates the sign-and-notarize step.
func NewNotarizeStep(name string) Step {
	return &notarizeStep{name: name}
}

func (s *notarizeStep) Name() string { return s.name }

func (s *notarizeStep) Run(ctx StepContext) error {
	cfg := ctx.Config

	dmgName, err := ImageFileName(cfg)
	if err != nil {
		return err
	}
	dmgPath := filepath.Join(cfg.OutputDir(), dmgName)

	identity := cfg.Get(api.KeySigningIdentity)
	if identity == "" {
		return &api.CredentialError{What: "signing_identity is not configured"}
	}

	slog.Info("signing disk image", "step", s.name, "image", dmgPath, "identity", identity)
	if err := ctx.Runner.Run("codesign",
		"--force", "--timestamp", "--sign", identity, dmgPath); err != nil {
		return err
	}

	appleID, err := ctx.Credentials.Lookup(cfg.Get(api.KeyAppleIDService))
	if err != nil {
		return err
	}
	password, err := ctx.Credentials.Lookup(cfg.Get(api.KeyPasswordService))
	if err != nil {
		return err
	}
	teamID := cfg.Get(api.KeyTeamID)

	switch {
	case appleID == "":
		return &api.CredentialError{What: "Apple ID did not resolve from service " + cfg.Get(api.KeyAppleIDService)}
	case password == "":
		return &api.CredentialError{What: "app-specific password did not resolve from service " + cfg.Get(api.KeyPasswordService)}
	case teamID == "":
		return &api.CredentialError{What: "team_id is not configured"}
	}

	slog.Info("submitting for notarization", "step", s.name, "image", dmgPath, "teamID", teamID)
	return ctx.Runner.Run("xcrun", "notarytool", "submit", dmgPath,
		"--apple-id", appleID,
		"--team-id", teamID,
		"--password", password,
		"--wait")
}
