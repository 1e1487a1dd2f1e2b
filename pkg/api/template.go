package api

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateData returns the fields exposed to name templates such as
// dmg_name and volume_name.
func (c *Config) TemplateData() map[string]string {
	return map[string]string{
		"ProjectName": c.ProjectName(),
		"Version":     c.Get(KeyVersion),
	}
}

// RenderName renders a configuration value that may be a template, e.g.
// "{{ .ProjectName }}-{{ .Version }}.dmg".
func RenderName(text string, data map[string]string) (string, error) {
	tmpl, err := template.New("name").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing name template %q: %w", text, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering name template %q: %w", text, err)
	}
	return buf.String(), nil
}
