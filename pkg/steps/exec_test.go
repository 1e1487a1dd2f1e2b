package steps

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/systemstart/macship/pkg/api"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not in PATH")
	}
}

func TestExecRunner_Success(t *testing.T) {
	skipWithoutShell(t)

	if err := (ExecRunner{}).Run("sh", "-c", "exit 0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecRunner_NonZeroExitBecomesToolError(t *testing.T) {
	skipWithoutShell(t)

	err := (ExecRunner{}).Run("sh", "-c", "echo boom >&2; exit 3")

	var toolErr *api.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if toolErr.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", toolErr.ExitCode)
	}
	if toolErr.Tool != "sh" {
		t.Errorf("expected tool name sh, got %q", toolErr.Tool)
	}
	if !strings.Contains(toolErr.Stderr, "boom") {
		t.Errorf("expected captured stderr, got %q", toolErr.Stderr)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	err := (ExecRunner{}).Run("definitely-not-a-real-binary-macship")

	var toolErr *api.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if toolErr.ExitCode != -1 {
		t.Errorf("expected exit code -1 for a missing binary, got %d", toolErr.ExitCode)
	}
}

func TestExecRunner_Output(t *testing.T) {
	skipWithoutShell(t)

	out, err := (ExecRunner{}).Output("sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("expected hello, got %q", out)
	}
}
