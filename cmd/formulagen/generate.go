package main

import (
	"os"

	"formulagen/internal/domain-adapters/gateways"
	"formulagen/internal/domain/entities"
	"formulagen/internal/domain/interfaces"
	"formulagen/internal/external-adapters/gpg"
	"formulagen/internal/external-adapters/logging"
)

// newLogger builds the process-wide diagnostic logger. Debug output is
// opt-in so the default stdout stays the plain manifest echo.
func newLogger() *logging.ZapLogger {
	return logging.NewZapLogger(os.Getenv("FORMULAGEN_DEBUG") == "1")
}

// generate runs the load-substitute-echo-write pipeline for one manifest
// request. Any failure is returned unrecovered; callers treat it as fatal.
func generate(logger interfaces.Logger, manifest *entities.Manifest) error {
	renderer := gateways.NewTemplateRenderer(logger)

	template, err := renderer.LoadTemplate(manifest.TemplatePath)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(template, manifest.Values())
	if err != nil {
		return err
	}

	return gateways.NewManifestWriter(os.Stdout).Write(manifest, rendered)
}

// verifySignature checks a detached signature over a release artifact using
// a locally stored public key
func verifySignature(keyFile, artifact, sigFile string) error {
	verifier := gpg.NewVerifier()
	if err := verifier.ImportKeyFromFile(keyFile); err != nil {
		return err
	}
	return verifier.VerifySignatureFromFile(artifact, sigFile)
}
