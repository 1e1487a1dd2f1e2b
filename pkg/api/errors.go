package api

import (
	"fmt"
	"strings"
)

// ConfigError reports a missing or unreadable configuration file, or
// required keys that are absent or empty.
type ConfigError struct {
	Path        string
	MissingKeys []string
	Err         error
}

func (e *ConfigError) Error() string {
	if len(e.MissingKeys) > 0 {
		return fmt.Sprintf("configuration %s: missing required keys: %s",
			e.Path, strings.Join(e.MissingKeys, ", "))
	}
	return fmt.Sprintf("configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnknownStepError reports a step identifier with no registered action.
type UnknownStepError struct {
	Name string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step %q", e.Name)
}

// ConfirmationDeclinedError reports that the user answered no to a
// destructive-step prompt; the whole run aborts.
type ConfirmationDeclinedError struct {
	Step string
}

func (e *ConfirmationDeclinedError) Error() string {
	return fmt.Sprintf("step %q: aborted by user", e.Step)
}

// CredentialError reports a required secret or identity that did not
// resolve to a non-empty value.
type CredentialError struct {
	What string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential/config problem: %s", e.What)
}

// ToolError reports a wrapped external tool exiting non-zero. ExitCode
// is the tool's own exit status where the platform reports one, -1
// otherwise (e.g. killed by signal, or the binary was not found).
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed (exit %d)", e.Tool, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }
