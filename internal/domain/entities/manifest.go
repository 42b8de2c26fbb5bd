package entities

// Kind identifies which package manager a manifest targets
type Kind string

const (
	// KindChocolatey targets a Chocolatey package manifest
	KindChocolatey Kind = "chocolatey"

	// KindHomebrew targets a Homebrew formula
	KindHomebrew Kind = "homebrew"
)

// HashValue binds a release-artifact checksum to a template placeholder.
// The value is opaque text: it is substituted, never parsed or validated.
type HashValue struct {
	Label string // operator-facing summary label, e.g. "MAC HASH"
	Name  string // placeholder name in the template, e.g. "hash_mac"
	Value string
}

// Manifest describes a single manifest generation request
type Manifest struct {
	Kind         Kind
	Title        string // operation name shown in the summary
	Version      string
	TemplatePath string
	OutputPath   string
	Hashes       []HashValue
}

// Values returns the placeholder-to-replacement mapping for substitution
func (m *Manifest) Values() map[string]string {
	values := make(map[string]string, len(m.Hashes)+1)
	values["version"] = m.Version
	for _, h := range m.Hashes {
		values[h.Name] = h.Value
	}
	return values
}
