// Package gateways contains adapters for template loading, substitution and
// manifest output.
package gateways

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"formulagen/internal/domain/interfaces"
)

// Placeholder delimiters. Templates use the ${name} form, e.g. ${version}.
const (
	tagStart = "${"
	tagEnd   = "}"
)

// TemplateRenderer loads manifest templates and performs non-strict
// placeholder substitution: every occurrence of a bound placeholder is
// replaced, and placeholders with no bound value are left in the output
// verbatim. Templates may contain incidental ${...} text that must survive
// untouched, so an unknown name is never an error.
type TemplateRenderer struct {
	logger interfaces.Logger
}

// NewTemplateRenderer creates a new template renderer
func NewTemplateRenderer(logger interfaces.Logger) *TemplateRenderer {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &TemplateRenderer{logger: logger}
}

// LoadTemplate reads the full template text from disk
func (r *TemplateRenderer) LoadTemplate(path string) (string, error) {
	//nolint:gosec // G304: template path is operator-provided input
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes every bound placeholder in the template text. A
// well-formed placeholder with no bound value passes through unchanged, and
// an unclosed ${ is literal text rather than an error, so incidental
// delimiter-like content always survives.
func (r *TemplateRenderer) Render(template string, values map[string]string) (string, error) {
	head, tail := splitDangling(template)

	t, err := fasttemplate.NewTemplate(head, tagStart, tagEnd)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	unmatched := 0
	rendered := t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if value, ok := values[tag]; ok {
			return w.Write([]byte(value))
		}
		unmatched++
		return fmt.Fprintf(w, "%s%s%s", tagStart, tag, tagEnd)
	})

	r.logger.Debug("rendered template",
		interfaces.F("bound", len(values)),
		interfaces.F("unmatched", unmatched))

	return rendered + tail, nil
}

// splitDangling cuts the template before the first ${ that has no closing
// brace. fasttemplate rejects a dangling delimiter at parse time, but safe
// substitution keeps it as literal text, so the tail is appended to the
// rendered output untouched.
func splitDangling(template string) (head, tail string) {
	offset := 0
	for {
		i := strings.Index(template[offset:], tagStart)
		if i < 0 {
			return template, ""
		}
		start := offset + i
		if !strings.Contains(template[start+len(tagStart):], tagEnd) {
			return template[:start], template[start:]
		}
		offset = start + len(tagStart)
	}
}
