package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a release configuration file, applies defaults, and
// validates it. Files named *.yaml or *.yml are parsed as a flat YAML
// string map; anything else is parsed as "key = value" lines.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ConfigError{Path: filename, Err: err}
	}

	var values map[string]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		values, err = parseYAML(data)
	default:
		values = parseConf(data)
	}
	if err != nil {
		return nil, &ConfigError{Path: filename, Err: err}
	}

	cfg := &Config{values: values, FilePath: filename}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Steps = SplitSteps(cfg.Get(KeySteps))
	return cfg, nil
}

// parseConf parses "key = value" lines. Whitespace around key and value
// is trimmed, surrounding single or double quotes on the value are
// stripped, and lines without a "=" (comments included) are ignored.
// The first line seen for a key wins; later duplicates are ignored.
func parseConf(data []byte) map[string]string {
	values := make(map[string]string)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, exists := values[key]; exists {
			continue
		}

		values[key] = unquote(strings.TrimSpace(value))
	}

	return values
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func parseYAML(data []byte) (map[string]string, error) {
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// SplitSteps parses the comma-delimited step list. Entries are
// whitespace-trimmed, order is preserved and duplicates are retained.
// The result has one entry per delimiter-separated token, so an empty
// token (e.g. a trailing comma) stays in the list and fails as an
// unknown step when the run reaches it.
func SplitSteps(s string) []string {
	tokens := strings.Split(s, ",")
	steps := make([]string, len(tokens))
	for i, entry := range tokens {
		steps[i] = strings.TrimSpace(entry)
	}
	return steps
}
