package gateways

import (
	"fmt"
	"io"
	"os"

	"formulagen/internal/domain/entities"
)

// Delimiter rules framing the echoed manifest. Release pipelines scrape the
// block between them, so the exact text is load-bearing.
const (
	OpeningRule = "================== Generated package file =================="
	ClosingRule = "============================================================"
)

// ManifestWriter persists a rendered manifest and reports the operation to
// the operator. The bytes echoed between the two delimiter lines are exactly
// the bytes written to the output file.
type ManifestWriter struct {
	out io.Writer
}

// NewManifestWriter creates a writer that echoes to out (stdout when nil)
func NewManifestWriter(out io.Writer) *ManifestWriter {
	if out == nil {
		out = os.Stdout
	}
	return &ManifestWriter{out: out}
}

// Write prints the operation summary, echoes the rendered text between the
// delimiter rules, then writes it to the manifest's output path, truncating
// any existing file
func (w *ManifestWriter) Write(m *entities.Manifest, rendered string) error {
	fmt.Fprintf(w.out, "Generating %s\n", m.Title)
	fmt.Fprintf(w.out, "     VERSION: %s\n", m.Version)
	fmt.Fprintf(w.out, "     TEMPLATE PATH: %s\n", m.TemplatePath)
	fmt.Fprintf(w.out, "     SAVING AT: %s\n", m.OutputPath)
	for _, h := range m.Hashes {
		fmt.Fprintf(w.out, "     %s: %s\n", h.Label, h.Value)
	}

	fmt.Fprintf(w.out, "\n%s\n", OpeningRule)
	fmt.Fprint(w.out, rendered)
	fmt.Fprintf(w.out, "%s\n", ClosingRule)

	//nolint:gosec // G306: generated manifests are meant to be committed and shared
	if err := os.WriteFile(m.OutputPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", m.OutputPath, err)
	}

	return nil
}
