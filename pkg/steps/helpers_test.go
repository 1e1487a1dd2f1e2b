package steps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/systemstart/macship/pkg/api"
)

// testConfig loads a config from a temp file with sensible required
// keys; overrides replace or add individual keys.
func testConfig(t *testing.T, overrides map[string]string) *api.Config {
	t.Helper()
	dir := t.TempDir()

	values := map[string]string{
		api.KeyProjectName: "Demo",
		api.KeySourceDir:   dir,
		api.KeyOutputDir:   filepath.Join(dir, "out"),
		api.KeySteps:       "dmg",
	}
	for k, v := range overrides {
		values[k] = v
	}

	var sb strings.Builder
	for k, v := range values {
		sb.WriteString(k + " = " + v + "\n")
	}

	f := filepath.Join(dir, "macship.conf")
	if err := os.WriteFile(f, []byte(sb.String()), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := api.Load(f)
	if err != nil {
		t.Fatalf("loading test config: %v", err)
	}
	return cfg
}

type call struct {
	name string
	args []string
}

func (c call) line() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// fakeRunner records invocations and returns scripted results.
type fakeRunner struct {
	calls   []call
	runErr  func(name string, args []string) error
	outputs map[string]string
}

func (r *fakeRunner) Run(name string, args ...string) error {
	r.calls = append(r.calls, call{name: name, args: args})
	if r.runErr != nil {
		return r.runErr(name, args)
	}
	return nil
}

func (r *fakeRunner) Output(name string, args ...string) (string, error) {
	if err := r.Run(name, args...); err != nil {
		return "", err
	}
	return r.outputs[call{name: name, args: args}.line()], nil
}

// fakeStore resolves credentials from a plain map; unknown services
// resolve to empty, mirroring the real store.
type fakeStore struct {
	secrets map[string]string
}

func (s fakeStore) Lookup(service string) (string, error) {
	return s.secrets[service], nil
}

// refuseConfirmer fails the test if any prompt is issued.
type refuseConfirmer struct {
	t *testing.T
}

func (c refuseConfirmer) Confirm(prompt string) bool {
	c.t.Helper()
	c.t.Fatalf("unexpected confirmation prompt: %s", prompt)
	return false
}

// answerConfirmer records the prompt and returns a fixed answer.
type answerConfirmer struct {
	answer   bool
	prompted *bool
}

func (c answerConfirmer) Confirm(string) bool {
	if c.prompted != nil {
		*c.prompted = true
	}
	return c.answer
}
