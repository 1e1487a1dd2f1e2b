package steps

import (
	"testing"

	"github.com/systemstart/macship/pkg/api"
)

func TestEnvKeyForService(t *testing.T) {
	tests := []struct {
		service string
		want    string
	}{
		{"macship-apple-id", "MACSHIP_APPLE_ID"},
		{"macship-app-password", "MACSHIP_APP_PASSWORD"},
		{"My.Service 2", "MY_SERVICE_2"},
	}

	for _, tt := range tests {
		if got := EnvKeyForService(tt.service); got != tt.want {
			t.Errorf("EnvKeyForService(%q) = %q, want %q", tt.service, got, tt.want)
		}
	}
}

func TestKeychainStore_EnvOverrideWins(t *testing.T) {
	t.Setenv("MACSHIP_APPLE_ID", "env@example.com")

	runner := &fakeRunner{outputs: map[string]string{
		"security find-generic-password -s macship-apple-id -w": "keychain@example.com\n",
	}}
	store := KeychainStore{Runner: runner}

	got, err := store.Lookup("macship-apple-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "env@example.com" {
		t.Errorf("environment must win over keychain, got %q", got)
	}
	if len(runner.calls) != 0 {
		t.Error("security must not be invoked when the environment resolves")
	}
}

func TestKeychainStore_FallsBackToSecurity(t *testing.T) {
	t.Setenv("MACSHIP_APPLE_ID", "")

	runner := &fakeRunner{outputs: map[string]string{
		"security find-generic-password -s macship-apple-id -w": "dev@example.com\n",
	}}
	store := KeychainStore{Runner: runner}

	got, err := store.Lookup("macship-apple-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "dev@example.com" {
		t.Errorf("expected trimmed keychain value, got %q", got)
	}
}

func TestKeychainStore_AbsenceIsEmptyNotError(t *testing.T) {
	t.Setenv("MACSHIP_APPLE_ID", "")

	runner := &fakeRunner{runErr: func(string, []string) error {
		return &api.ToolError{Tool: "security", ExitCode: 44}
	}}
	store := KeychainStore{Runner: runner}

	got, err := store.Lookup("macship-apple-id")
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected empty resolution, got %q", got)
	}
}
