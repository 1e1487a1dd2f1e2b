package steps

import (
	"log/slog"
	"os"
	"strings"
)

// KeychainStore resolves secrets by service name. The environment is
// consulted first (service name uppercased, non-alphanumerics replaced
// with underscores) so CI can supply credentials without a keychain;
// otherwise the macOS "security" tool is queried. A secret that does
// not resolve yields an empty string, never an error — the step that
// needs the value decides whether that is fatal.
type KeychainStore struct {
	Runner CommandRunner
}

func (s KeychainStore) Lookup(service string) (string, error) {
	if v := os.Getenv(EnvKeyForService(service)); v != "" {
		return v, nil
	}

	out, err := s.Runner.Output("security", "find-generic-password", "-s", service, "-w")
	if err != nil {
		slog.Debug("keychain lookup failed", "service", service, "error", err)
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// EnvKeyForService maps a keychain service name to its environment
// override variable, e.g. "macship-apple-id" -> "MACSHIP_APPLE_ID".
func EnvKeyForService(service string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			return r
		default:
			return '_'
		}
	}, service)
	return mapped
}
