package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"formulagen/internal/external-adapters/yaml"
)

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	recipesDir := fs.String("recipes", "recipes", "Path to recipes directory")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: formulagen list [options]

List all available manifest recipes.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  formulagen list
  formulagen list --recipes deployment/recipes
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

	fmt.Printf("Available recipes (%d total):\n\n", len(recipes))

	for _, recipe := range recipes {
		fmt.Printf("  %-20s %s %s\n", recipe.Name, recipe.Kind, recipe.Version)
		fmt.Printf("  %-20s Template: %s\n", "", recipe.Template)
		fmt.Printf("  %-20s Output: %s\n", "", recipe.Output)

		if recipe.Signature != nil {
			fmt.Printf("  %-20s 🔐 Signature verification enabled\n", "")
		}

		fmt.Println()
	}
}
