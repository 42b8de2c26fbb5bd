package entities

// Recipe is a YAML-declared manifest generation request used by batch mode.
// Hash values come from the release pipeline that wrote the recipe; they are
// carried as opaque strings exactly like their command-line counterparts.
type Recipe struct {
	Name      string
	Kind      Kind
	Version   string
	Template  string
	Output    string
	Hashes    map[string]string
	Signature *RecipeSignature
}

// RecipeSignature configures an optional detached-signature check over the
// release artifact before its hash is embedded in a manifest
type RecipeSignature struct {
	KeyFile  string // armored public key file
	Artifact string // file the signature covers
	SigFile  string // detached signature file
}
