package offer2pdf

import "errors"

// Sentinel errors for pipeline operations.
var (
	// Input validation (stage 1).
	ErrInputNotFound = errors.New("input data file not found")
	ErrInputParse    = errors.New("input data file is not valid JSON")
	ErrNoItems       = errors.New("offer has no line items")

	// Template rendering (stage 2).
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateParse    = errors.New("template parsing failed")
	ErrTemplateRender   = errors.New("template rendering failed")
	ErrNoPagesRendered  = errors.New("no pages rendered")

	// Rasterization (stage 3).
	ErrBrowserConnect      = errors.New("failed to connect to browser")
	ErrPageCreate          = errors.New("failed to create browser page")
	ErrPageLoad            = errors.New("failed to load page")
	ErrPDFGeneration       = errors.New("PDF generation failed")
	ErrRasterizationFailed = errors.New("rasterization failed")

	// Artifact handling (stages 3-4).
	ErrWriteArtifact = errors.New("failed to write PDF artifact")
)
