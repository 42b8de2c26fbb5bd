package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"formulagen/internal/domain/services"
)

func runHomebrew(_ context.Context, args []string) {
	fs := flag.NewFlagSet("homebrew", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: formulagen homebrew <version> <template> <output> <hash_mac> <hash_linux>

Generate a Homebrew formula by substituting the release version and the
per-platform artifact hashes into a template.

Arguments:
  version     Release version, taken verbatim
  template    Path to the formula template
  output      Path the generated formula is written to
  hash_mac    Checksum of the macOS artifact (opaque text)
  hash_linux  Checksum of the Linux artifact (opaque text)

Templates use ${name} placeholders: ${version}, ${hash_mac} and
${hash_linux} are substituted, anything else is left untouched.

Examples:
  formulagen homebrew 2.0.0 kdash.rb.tmpl Formula/kdash.rb macsum linuxsum
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if fs.NArg() < 5 {
		fmt.Fprintf(os.Stderr, "Error: insufficient arguments\n\n")
		fs.Usage()
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	manifest := services.NewManifestService().Homebrew(fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3), fs.Arg(4))

	if err := generate(logger, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
