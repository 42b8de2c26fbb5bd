package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRender tests non-strict placeholder substitution
func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "version ${version}",
			values:   map[string]string{"version": "1.4.0"},
			want:     "version 1.4.0",
		},
		{
			name:     "chocolatey scenario",
			template: "<version>${version}</version>\n<checksum64>${hash_64}</checksum64>\n",
			values:   map[string]string{"version": "1.4.0", "hash_64": "abc123"},
			want:     "<version>1.4.0</version>\n<checksum64>abc123</checksum64>\n",
		},
		{
			name:     "homebrew scenario",
			template: "version \"${version}\"\nsha256 \"${hash_mac}\"\nsha256 \"${hash_linux}\"\n",
			values:   map[string]string{"version": "2.0.0", "hash_mac": "macsum", "hash_linux": "linuxsum"},
			want:     "version \"2.0.0\"\nsha256 \"macsum\"\nsha256 \"linuxsum\"\n",
		},
		{
			name:     "unknown placeholder passes through",
			template: "url \"${download_url}\" version \"${version}\"",
			values:   map[string]string{"version": "1.4.0"},
			want:     "url \"${download_url}\" version \"1.4.0\"",
		},
		{
			name:     "every occurrence replaced",
			template: "${version} and ${version} and ${version}",
			values:   map[string]string{"version": "3.1.0"},
			want:     "3.1.0 and 3.1.0 and 3.1.0",
		},
		{
			name:     "no placeholders round-trips",
			template: "class Kdash < Formula\n  desc \"A fast dashboard\"\nend\n",
			values:   map[string]string{"version": "1.4.0"},
			want:     "class Kdash < Formula\n  desc \"A fast dashboard\"\nend\n",
		},
		{
			name:     "empty template",
			template: "",
			values:   map[string]string{"version": "1.4.0"},
			want:     "",
		},
		{
			name:     "bare dollar is literal text",
			template: "costs $5, version ${version}",
			values:   map[string]string{"version": "1.4.0"},
			want:     "costs $5, version 1.4.0",
		},
	}

	renderer := NewTemplateRenderer(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.Render(tt.template, tt.values)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRender_DanglingDelimiter tests that an unclosed ${ survives as
// literal text instead of failing the render
func TestRender_DanglingDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "trailing unclosed delimiter",
			template: "version ${version",
			values:   map[string]string{"version": "1.4.0"},
			want:     "version ${version",
		},
		{
			name:     "placeholders before the dangle still render",
			template: "v ${version} tail ${hash",
			values:   map[string]string{"version": "1.4.0", "hash": "abc123"},
			want:     "v 1.4.0 tail ${hash",
		},
		{
			name:     "bare delimiter only",
			template: "${",
			values:   map[string]string{"version": "1.4.0"},
			want:     "${",
		},
		{
			name:     "multiple unclosed delimiters in the tail",
			template: "${version} then ${a ${b",
			values:   map[string]string{"version": "1.4.0"},
			want:     "1.4.0 then ${a ${b",
		},
	}

	renderer := NewTemplateRenderer(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.Render(tt.template, tt.values)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLoadTemplate tests template file loading
func TestLoadTemplate(t *testing.T) {
	renderer := NewTemplateRenderer(nil)

	t.Run("reads full content", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "kdash.rb.tmpl")
		content := "version \"${version}\"\nsha256 \"${hash_mac}\"\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("Failed to create template file: %v", err)
		}

		got, err := renderer.LoadTemplate(path)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != content {
			t.Errorf("LoadTemplate() = %q, want %q", got, content)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := renderer.LoadTemplate("/nonexistent/template.tmpl")
		if err == nil {
			t.Fatal("LoadTemplate() with missing file should return error")
		}
	})
}
