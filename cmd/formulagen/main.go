package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "chocolatey":
		runChocolatey(ctx, os.Args[2:])
	case "homebrew":
		runHomebrew(ctx, os.Args[2:])
	case "batch":
		runBatch(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`formulagen - Package manager manifest generator

Usage:
  formulagen <command> [arguments]

Commands:
  chocolatey  Generate a Chocolatey package manifest from a template
  homebrew    Generate a Homebrew formula from a template
  batch       Generate manifests for every recipe in a directory
  list        List available manifest recipes
  verify      Verify a detached GPG signature over a release artifact

Use "formulagen <command> --help" for more information about a command.`)
}
