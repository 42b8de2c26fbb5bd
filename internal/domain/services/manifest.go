// Package services contains domain services for manifest generation.
package services

import (
	"fmt"
	"strings"

	"formulagen/internal/domain/entities"
)

// ManifestService builds manifest generation requests from raw operator input
type ManifestService struct{}

// NewManifestService creates a new manifest service
func NewManifestService() *ManifestService {
	return &ManifestService{}
}

// Chocolatey builds the request for a Chocolatey package manifest.
// A single leading "v" is stripped from the version so that release tags like
// v1.4.0 render as 1.4.0. The hash is trimmed of surrounding whitespace and
// otherwise treated as opaque text.
func (s *ManifestService) Chocolatey(version, templatePath, outputPath, hash64 string) *entities.Manifest {
	return &entities.Manifest{
		Kind:         entities.KindChocolatey,
		Title:        "Chocolatey package manifest",
		Version:      strings.TrimPrefix(version, "v"),
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		Hashes: []entities.HashValue{
			{Label: "HASH", Name: "hash_64", Value: strings.TrimSpace(hash64)},
		},
	}
}

// Homebrew builds the request for a Homebrew formula. The version is taken
// verbatim; both hashes are trimmed of surrounding whitespace.
func (s *ManifestService) Homebrew(version, templatePath, outputPath, hashMac, hashLinux string) *entities.Manifest {
	return &entities.Manifest{
		Kind:         entities.KindHomebrew,
		Title:        "Homebrew formula",
		Version:      version,
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		Hashes: []entities.HashValue{
			{Label: "MAC HASH", Name: "hash_mac", Value: strings.TrimSpace(hashMac)},
			{Label: "LINUX HASH", Name: "hash_linux", Value: strings.TrimSpace(hashLinux)},
		},
	}
}

// FromRecipe builds a request from a batch recipe, applying the same version
// and hash handling as the equivalent command-line invocation
func (s *ManifestService) FromRecipe(recipe *entities.Recipe) (*entities.Manifest, error) {
	switch recipe.Kind {
	case entities.KindChocolatey:
		hash64, err := recipeHash(recipe, "hash_64")
		if err != nil {
			return nil, err
		}
		return s.Chocolatey(recipe.Version, recipe.Template, recipe.Output, hash64), nil

	case entities.KindHomebrew:
		hashMac, err := recipeHash(recipe, "hash_mac")
		if err != nil {
			return nil, err
		}
		hashLinux, err := recipeHash(recipe, "hash_linux")
		if err != nil {
			return nil, err
		}
		return s.Homebrew(recipe.Version, recipe.Template, recipe.Output, hashMac, hashLinux), nil

	default:
		return nil, fmt.Errorf("recipe %s: unknown kind %q", recipe.Name, recipe.Kind)
	}
}

func recipeHash(recipe *entities.Recipe, name string) (string, error) {
	value, ok := recipe.Hashes[name]
	if !ok {
		return "", fmt.Errorf("recipe %s: missing hash %q", recipe.Name, name)
	}
	return value, nil
}
