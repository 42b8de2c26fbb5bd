// Package yaml provides YAML-based recipe parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"formulagen/internal/domain/entities"
)

// yamlRecipe represents the raw YAML structure
type yamlRecipe struct {
	Name      string            `yaml:"name"`
	Kind      string            `yaml:"kind"`
	Version   string            `yaml:"version"`
	Template  string            `yaml:"template"`
	Output    string            `yaml:"output"`
	Hashes    map[string]string `yaml:"hashes"`
	Signature *yamlSignature    `yaml:"signature"`
}

type yamlSignature struct {
	KeyFile  string `yaml:"key_file"`
	Artifact string `yaml:"artifact"`
	SigFile  string `yaml:"sig_file"`
}

// RecipeParser parses YAML recipe files
type RecipeParser struct{}

// NewRecipeParser creates a new YAML parser
func NewRecipeParser() *RecipeParser {
	return &RecipeParser{}
}

// ParseFile parses a YAML recipe file into a Recipe entity
func (p *RecipeParser) ParseFile(filePath string) (*entities.Recipe, error) {
	//nolint:gosec // G304: filePath is a recipe path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Recipe entity
func (p *RecipeParser) Parse(data []byte) (*entities.Recipe, error) {
	var raw yamlRecipe
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Name == "" {
		return nil, fmt.Errorf("recipe is missing required field: name")
	}
	if raw.Template == "" {
		return nil, fmt.Errorf("recipe %s is missing required field: template", raw.Name)
	}
	if raw.Output == "" {
		return nil, fmt.Errorf("recipe %s is missing required field: output", raw.Name)
	}

	recipe := &entities.Recipe{
		Name:     raw.Name,
		Kind:     entities.Kind(raw.Kind),
		Version:  raw.Version,
		Template: raw.Template,
		Output:   raw.Output,
		Hashes:   raw.Hashes,
	}

	if raw.Signature != nil {
		recipe.Signature = &entities.RecipeSignature{
			KeyFile:  raw.Signature.KeyFile,
			Artifact: raw.Signature.Artifact,
			SigFile:  raw.Signature.SigFile,
		}
	}

	return recipe, nil
}
