package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runVerify(_ context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	keyFile := fs.String("key", "", "Path to an armored GPG public key file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: formulagen verify --key <pubkey.asc> <artifact> <signature>

Verify a detached GPG signature over a release artifact before its hash is
embedded in a manifest. Keys and signatures are read from local files only.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  formulagen verify --key keys/release.asc dist/kdash.tar.gz dist/kdash.tar.gz.sig
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *keyFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --key is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if fs.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Error: artifact and signature paths are required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	if err := verifySignature(*keyFile, fs.Arg(0), fs.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Signature OK: %s\n", fs.Arg(0))
}
