package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"formulagen/internal/domain/services"
)

func runChocolatey(_ context.Context, args []string) {
	fs := flag.NewFlagSet("chocolatey", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: formulagen chocolatey <version> <template> <output> <hash_64>

Generate a Chocolatey package manifest by substituting the release version
and the 64-bit installer hash into a template.

Arguments:
  version    Release version; a leading "v" is stripped (v1.4.0 -> 1.4.0)
  template   Path to the manifest template
  output     Path the generated manifest is written to
  hash_64    Checksum of the 64-bit installer artifact (opaque text)

Templates use ${name} placeholders: ${version} and ${hash_64} are
substituted, anything else is left untouched.

Examples:
  formulagen chocolatey v1.4.0 kdash.nuspec.tmpl kdash.nuspec abc123
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 4 {
		fmt.Fprintf(os.Stderr, "Error: insufficient arguments\n\n")
		fs.Usage()
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	manifest := services.NewManifestService().Chocolatey(fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3))

	if err := generate(logger, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
