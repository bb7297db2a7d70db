package main

import (
	"context"
	"errors"
	"os"

	offer2pdf "github.com/alnah/go-offer2pdf"
	"github.com/alnah/go-offer2pdf/internal/config"
)

// Exit codes for the offer2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126,
// and 130 for interruption (128 + SIGINT).
const (
	ExitSuccess     = 0 // Successful run
	ExitGeneral     = 1 // General/unexpected error, including aborted runs
	ExitUsage       = 2 // Invalid flags or config
	ExitInput       = 3 // Data file missing or unparseable
	ExitBrowser     = 4 // Browser/Chrome errors
	ExitInterrupted = 130
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// User interruption (exit 130)
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Browser errors (exit 4)
	if errors.Is(err, offer2pdf.ErrBrowserConnect) ||
		errors.Is(err, offer2pdf.ErrPageCreate) ||
		errors.Is(err, offer2pdf.ErrPageLoad) ||
		errors.Is(err, offer2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Input errors (exit 3)
	if errors.Is(err, offer2pdf.ErrInputNotFound) ||
		errors.Is(err, offer2pdf.ErrInputParse) ||
		errors.Is(err, offer2pdf.ErrNoItems) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitInput
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return ExitUsage
	}

	return ExitGeneral
}
