package logging

import "testing"

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		logType   string
		level     string
		wantError bool
	}{
		{"tint/info", Tint, "info", false},
		{"json/debug", JSON, "debug", false},
		{"text/warn", Text, "warn", false},
		{"tint/error", Tint, "error", false},
		{"invalid level", Tint, "loudest", true},
		{"unknown type", "syslog", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.logType, tt.level)
			if (err != nil) != tt.wantError {
				t.Errorf("Initialize(%q, %q) error = %v, wantError = %v", tt.logType, tt.level, err, tt.wantError)
			}
		})
	}
}
