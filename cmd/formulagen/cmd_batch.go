package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"formulagen/internal/domain/entities"
	"formulagen/internal/domain/interfaces"
	"formulagen/internal/domain/services"
	"formulagen/internal/external-adapters/yaml"
)

func runBatch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	recipesDir := fs.String("recipes", "recipes", "Path to recipes directory")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: formulagen batch [options]

Generate manifests for every recipe in the recipes directory. Each recipe
runs the same pipeline as the chocolatey/homebrew commands; a recipe with a
signature block has its artifact verified first. A failing recipe does not
abort the rest of the batch.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  formulagen batch
  formulagen batch --recipes deployment/recipes
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	repo := yaml.NewRecipeRepository(*recipesDir, logger)
	recipes, err := repo.ListRecipes(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing recipes: %v\n", err)
		os.Exit(1)
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes found")
		return
	}

	fmt.Printf("Processing %d recipe(s)\n\n", len(recipes))

	service := services.NewManifestService()

	var generated, failed []string
	for i, recipe := range recipes {
		fmt.Printf("[%d/%d] %s (%s %s)\n", i+1, len(recipes), recipe.Name, recipe.Kind, recipe.Version)

		if err := processRecipe(logger, service, recipe); err != nil {
			fmt.Printf("  ❌ %s: %v\n\n", recipe.Name, err)
			failed = append(failed, recipe.Name)
			continue
		}

		fmt.Printf("  ✅ %s -> %s\n\n", recipe.Name, recipe.Output)
		generated = append(generated, recipe.Name)
	}

	fmt.Printf("Batch summary: %d generated, %d failed\n", len(generated), len(failed))
	for _, name := range failed {
		fmt.Printf("  failed: %s\n", name)
	}

	if len(generated) == 0 && len(failed) > 0 {
		fmt.Fprintf(os.Stderr, "Error: all %d recipe(s) failed\n", len(failed))
		os.Exit(1)
	}
}

func processRecipe(logger interfaces.Logger, service *services.ManifestService, recipe *entities.Recipe) error {
	if sig := recipe.Signature; sig != nil {
		if err := verifySignature(sig.KeyFile, sig.Artifact, sig.SigFile); err != nil {
			return fmt.Errorf("signature check: %w", err)
		}
	}

	manifest, err := service.FromRecipe(recipe)
	if err != nil {
		return err
	}

	return generate(logger, manifest)
}
