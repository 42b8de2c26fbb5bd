package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"formulagen/internal/domain/interfaces/repositories"
)

// RecipeRepository must satisfy the domain repository contract
var _ repositories.RecipeRepository = (*RecipeRepository)(nil)

func writeRecipe(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write recipe file: %v", err)
	}
}

const validRecipe = `name: kdash
kind: homebrew
version: v0.6.0
template: templates/kdash.rb.tmpl
output: Formula/kdash.rb
hashes:
  hash_mac: macsum
  hash_linux: linuxsum
`

// TestGetRecipe tests recipe lookup by name
func TestGetRecipe(t *testing.T) {
	tmpDir := t.TempDir()
	writeRecipe(t, tmpDir, "kdash.yml", validRecipe)

	repo := NewRecipeRepository(tmpDir, nil)

	t.Run("existing recipe", func(t *testing.T) {
		recipe, err := repo.GetRecipe(context.Background(), "kdash")
		if err != nil {
			t.Fatalf("GetRecipe() error = %v", err)
		}
		if recipe.Name != "kdash" {
			t.Errorf("Name = %q, want kdash", recipe.Name)
		}
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := repo.GetRecipe(context.Background(), "nonexistent")
		if err == nil {
			t.Fatal("GetRecipe() for unknown recipe should return error")
		}
	})
}

// TestListRecipes tests directory listing behavior
func TestListRecipes(t *testing.T) {
	t.Run("skips non-yaml and broken files", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeRecipe(t, tmpDir, "kdash.yml", validRecipe)
		writeRecipe(t, tmpDir, "notes.txt", "not a recipe")
		writeRecipe(t, tmpDir, "broken.yml", "name: [unclosed")

		repo := NewRecipeRepository(tmpDir, nil)
		recipes, err := repo.ListRecipes(context.Background())
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		if len(recipes) != 1 {
			t.Fatalf("len(recipes) = %d, want 1", len(recipes))
		}
		if recipes[0].Name != "kdash" {
			t.Errorf("Name = %q, want kdash", recipes[0].Name)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		repo := NewRecipeRepository(t.TempDir(), nil)
		recipes, err := repo.ListRecipes(context.Background())
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		if len(recipes) != 0 {
			t.Errorf("len(recipes) = %d, want 0", len(recipes))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		repo := NewRecipeRepository("/nonexistent/recipes", nil)
		if _, err := repo.ListRecipes(context.Background()); err == nil {
			t.Fatal("ListRecipes() on missing directory should return error")
		}
	})
}
