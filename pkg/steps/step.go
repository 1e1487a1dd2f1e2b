package steps

import "github.com/systemstart/macship/pkg/api"

// CommandRunner invokes an external tool. Run returns a *api.ToolError
// when the tool exits non-zero; Output additionally captures stdout.
type CommandRunner interface {
	Run(name string, args ...string) error
	Output(name string, args ...string) (string, error)
}

// Confirmer asks the user a yes/no question before a destructive
// operation. A false answer aborts the whole run.
type Confirmer interface {
	Confirm(prompt string) bool
}

// CredentialStore resolves a secret by service name. An absent secret
// resolves to "" with a nil error; the step that needs the value
// decides whether that is fatal.
type CredentialStore interface {
	Lookup(service string) (string, error)
}

// StepContext provides the runtime context for a step.
type StepContext struct {
	Config      *api.Config
	Runner      CommandRunner
	Confirmer   Confirmer
	Credentials CredentialStore
}

// Step is the interface all pipeline steps implement.
type Step interface {
	Name() string
	Run(ctx StepContext) error
}
