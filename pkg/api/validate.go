package api

// validate checks that every required key is present and non-empty.
// Missing keys are collected in a fixed order so the error message is
// deterministic across runs.
func (c *Config) validate() error {
	var missing []string
	for _, key := range RequiredKeys {
		if c.values[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Path: c.FilePath, MissingKeys: missing}
	}
	return nil
}
