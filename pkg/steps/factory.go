package steps

import "github.com/systemstart/macship/pkg/api"

// Action identifies one of the five fixed build operations.
type Action int

const (
	ActionCleanup Action = iota
	ActionPackage
	ActionNotarize
	ActionStaple
	ActionAppcast
)

// aliases maps accepted step spellings to actions. Matching is
// case-sensitive and exact; there is no fuzzy or partial matching.
var aliases = map[string]Action{
	"cleanup": ActionCleanup,
	"clean":   ActionCleanup,

	"dmg":       ActionPackage,
	"package":   ActionPackage,
	"build-dmg": ActionPackage,

	"notarize":          ActionNotarize,
	"sign-and-notarize": ActionNotarize,

	"staple":          ActionStaple,
	"staple-validate": ActionStaple,

	"appcast": ActionAppcast,
	"publish": ActionAppcast,
	"feed":    ActionAppcast,
}

// NewStep resolves a configured step name to a Step implementation, or
// returns *api.UnknownStepError for an unrecognized name.
func NewStep(name string) (Step, error) {
	action, ok := aliases[name]
	if !ok {
		return nil, &api.UnknownStepError{Name: name}
	}

	switch action {
	case ActionCleanup:
		return NewCleanupStep(name), nil
	case ActionPackage:
		return NewPackageStep(name), nil
	case ActionNotarize:
		return NewNotarizeStep(name), nil
	case ActionStaple:
		return NewStapleStep(name), nil
	default:
		return NewAppcastStep(name), nil
	}
}
