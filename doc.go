// Package offer2pdf turns a structured JSON offer record into a finished
// PDF document using headless Chrome.
//
// # Quick Start
//
// Create a service, run the pipeline, and close when done:
//
//	svc, err := offer2pdf.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.Run(ctx, "data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Location())
//
// The result carries the local artifact path and, when an uploader is
// configured and the upload succeeds, the public URL of the uploaded file.
//
// # Pipeline
//
// Each run executes five strictly sequential stages:
//
//  1. Validate: the data file exists and parses into an OfferRecord
//  2. Render: every template in the language's template set, plus the
//     closing page, is rendered to HTML (failed pages are skipped)
//  3. Rasterize: the pages are combined with page breaks and printed to
//     a single A4 PDF via headless Chrome (go-rod)
//  4. Upload: the PDF is upserted to the object store under an idempotent
//     filename derived from the client name (optional)
//  5. Cleanup: intermediate HTML pages are removed
//
// A per-template render failure skips that page; the run aborts only when
// no page renders at all. Upload and cleanup failures never fail the run.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := offer2pdf.New(
//	    offer2pdf.WithOutputDirs("htmlGenerated", "finalPdf"),
//	    offer2pdf.WithUploader(store),
//	    offer2pdf.WithErrorSink(sink),
//	    offer2pdf.WithCleanup(true, false),
//	)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first use (~/.cache/rod/browser/).
//
// Use ROD_BROWSER_BIN to point at a pre-installed Chrome binary. When
// CI=true or ROD_BROWSER_BIN is set the browser launches without its
// sandbox, which containerized environments require.
package offer2pdf
