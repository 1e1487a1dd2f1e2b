package steps

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/systemstart/macship/pkg/api"
)

// ExecRunner runs external tools via os/exec. Non-zero exits are
// translated into *api.ToolError carrying the tool's own exit code and
// captured stderr.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	return wrapExecErr(name, cmd.Run(), stderr.String())
}

func (ExecRunner) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := wrapExecErr(name, cmd.Run(), stderr.String()); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

func wrapExecErr(name string, err error, stderr string) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &api.ToolError{
		Tool:     name,
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}
