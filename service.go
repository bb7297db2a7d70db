package offer2pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/alnah/go-offer2pdf/internal/assets"
	"github.com/alnah/go-offer2pdf/internal/fileutil"
)

// Stage names used in error records and logs.
const (
	StageValidate  = "validate"
	StageRender    = "render"
	StageRasterize = "rasterize"
	StageUpload    = "upload"
	StageCleanup   = "cleanup"
)

// Service orchestrates the offer-to-PDF pipeline. Stages run strictly in
// sequence; a Service may be shared, but each Run owns its own working
// paths and artifact, so concurrent runs need no locking.
type Service struct {
	cfg        serviceConfig
	renderer   pageRenderer
	rasterizer rasterizer
	uploader   Uploader
	sink       ErrorSink
}

// RunResult describes the outcome of one successful run.
type RunResult struct {
	RunID            string
	Filename         string       // derived artifact filename
	LocalPath        string       // local artifact path (file may be gone if LocalRemoved)
	LocalRemoved     bool         // true when delete-local-after-upload removed the file
	PagesRendered    int
	SkippedTemplates []string     // templates skipped by the best-effort render policy
	Upload           UploadResult // zero value when no uploader is configured
}

// Location returns the authoritative artifact location: the remote URL
// when the upload succeeded, otherwise the local path.
func (r *RunResult) Location() string {
	if r.Upload.Success {
		return r.Upload.URL
	}
	return r.LocalPath
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g. WithUploader, WithCleanup).
// Returns an error only when a custom templates path is unusable.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			workflowName: defaultWorkflowName,
			htmlDir:      DefaultHTMLDir,
			pdfDir:       DefaultPDFDir,
			templateList: defaultTemplateList(),
			closingPage:  DefaultClosingPage,
			cleanupHTML:  true,
			timeout:      defaultTimeout,
			logf:         func(string, ...any) {},
		},
		uploader: noopUploader{},
		sink:     noopSink{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create collaborators if not injected (e.g. by tests)
	if s.renderer == nil {
		loader, err := assets.NewLoader(s.cfg.templatesBase)
		if err != nil {
			return nil, fmt.Errorf("configuring template loader: %w", err)
		}
		s.renderer = newPongoRenderer(loader)
	}
	if s.rasterizer == nil {
		s.rasterizer = newRodRasterizer(s.cfg.timeout)
	}

	return s, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.rasterizer != nil {
		return s.rasterizer.Close()
	}
	return nil
}

// Run executes the full pipeline for one offer record and returns the
// artifact location. The context bounds the whole run; callers impose
// the overall timeout. On abort the returned error is one of
// ErrInputNotFound, ErrInputParse, ErrNoItems, ErrNoPagesRendered,
// ErrRasterizationFailed or ErrWriteArtifact; all other failures are
// absorbed into the result and the error sink.
func (s *Service) Run(ctx context.Context, dataPath string) (*RunResult, error) {
	if dataPath == "" {
		dataPath = DefaultDataFile
	}
	result := &RunResult{RunID: uuid.NewString()}

	// Stage 1: validate. Aborts before any side effect, so no error
	// record is emitted here.
	rec, err := LoadOfferRecord(dataPath)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	// Stage 2: render the HTML set.
	pages, files, err := s.renderPages(ctx, rec, result)
	if err != nil {
		return nil, err
	}
	result.PagesRendered = len(pages)

	// Stage 3: rasterize to a single PDF.
	localPath, err := s.rasterize(ctx, rec, pages, result)
	if err != nil {
		return nil, err
	}
	result.LocalPath = localPath

	// Stage 4: upload (no-op uploader when unconfigured).
	s.upload(ctx, localPath, result)

	// Stage 5: cleanup intermediate HTML.
	s.cleanup(pages, files)

	return result, nil
}

// renderPages resolves the template set and renders every template in
// list order plus the closing page. A failed template is skipped and
// reported; the stage fails only when nothing rendered.
func (s *Service) renderPages(ctx context.Context, rec *OfferRecord, result *RunResult) ([]RenderedPage, []string, error) {
	set := ResolveTemplateSet(rec.Language)
	s.cfg.logf("Language %q resolved to template set %s", rec.Language, set.Dir)

	if err := os.MkdirAll(s.cfg.htmlDir, dirPermissions); err != nil {
		return nil, nil, fmt.Errorf("creating HTML output directory: %w", err)
	}

	data := rec.TemplateContext()
	var pages []RenderedPage
	var files []string

	for _, name := range templateOrder(s.cfg.templateList, s.cfg.closingPage) {
		html, err := s.renderer.Render(ctx, set.Dir, name, data)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			s.cfg.logf("Skipping %s: %v", name, err)
			s.report(ctx, result.RunID, StageRender, "TemplateRenderError", err,
				map[string]any{"template": name, "template_set": set.Dir})
			result.SkippedTemplates = append(result.SkippedTemplates, name)
			continue
		}

		path := filepath.Join(s.cfg.htmlDir, name)
		if err := os.WriteFile(path, []byte(html), filePermissions); err != nil {
			s.cfg.logf("Skipping %s: %v", name, err)
			s.report(ctx, result.RunID, StageRender, "TemplateRenderError", err,
				map[string]any{"template": name})
			result.SkippedTemplates = append(result.SkippedTemplates, name)
			continue
		}

		pages = append(pages, RenderedPage{Template: name, HTML: html})
		files = append(files, path)
		s.cfg.logf("Generated %s", name)
	}

	if len(pages) == 0 {
		s.report(ctx, result.RunID, StageRender, "NoPagesRendered", ErrNoPagesRendered, nil)
		return nil, nil, ErrNoPagesRendered
	}
	return pages, files, nil
}

// rasterize combines the rendered pages, prints them to one PDF, and
// writes the artifact under the derived filename. The single retry after
// closing the browser covers a stale or missing browser install.
func (s *Service) rasterize(ctx context.Context, rec *OfferRecord, pages []RenderedPage, result *RunResult) (string, error) {
	combinedPath, cleanupTmp, err := fileutil.WriteTempFile(combinePages(pages), "html")
	if err != nil {
		wrapped := fmt.Errorf("%w: writing combined document: %w", ErrRasterizationFailed, err)
		s.report(ctx, result.RunID, StageRasterize, "RasterizationFailed", wrapped, nil)
		return "", wrapped
	}
	defer cleanupTmp()

	pdfBytes, err := s.rasterizer.Rasterize(ctx, combinedPath)
	if err != nil && ctx.Err() == nil {
		// One-shot recovery: drop the browser so the next call lazily
		// relaunches (and reinstalls if needed), then retry exactly once.
		s.cfg.logf("Rasterization failed, reinitializing browser and retrying: %v", err)
		_ = s.rasterizer.Close()
		pdfBytes, err = s.rasterizer.Rasterize(ctx, combinedPath)
	}
	if err != nil {
		// Double wrap so the browser sentinels stay visible to errors.Is
		// for the CLI's exit-code mapping.
		wrapped := fmt.Errorf("%w: %w", ErrRasterizationFailed, err)
		s.report(ctx, result.RunID, StageRasterize, "RasterizationFailed", wrapped,
			map[string]any{"pages": len(pages)})
		return "", wrapped
	}

	if err := os.MkdirAll(s.cfg.pdfDir, dirPermissions); err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrWriteArtifact, err)
		s.report(ctx, result.RunID, StageRasterize, "WriteArtifactError", wrapped, nil)
		return "", wrapped
	}

	result.Filename = DeriveFilename(rec.Client.Company)
	localPath := filepath.Join(s.cfg.pdfDir, result.Filename)
	if err := os.WriteFile(localPath, pdfBytes, filePermissions); err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrWriteArtifact, err)
		s.report(ctx, result.RunID, StageRasterize, "WriteArtifactError", wrapped, nil)
		return "", wrapped
	}

	s.cfg.logf("PDF generated: %s (%.1f KB)", localPath, float64(len(pdfBytes))/1024)
	return localPath, nil
}

// upload sends the artifact to the object store. Failures are reported
// and absorbed; the local artifact stays the authoritative output.
func (s *Service) upload(ctx context.Context, localPath string, result *RunResult) {
	data, err := os.ReadFile(localPath) // #nosec G304 -- path derived above
	if err != nil {
		// Unreachable in practice; the file was just written.
		s.cfg.logf("Upload skipped, cannot read artifact: %v", err)
		return
	}

	up := s.uploader.Upload(ctx, result.Filename, data)
	result.Upload = up

	if up.Err != "" {
		s.cfg.logf("Upload failed: %s", up.Err)
		s.report(ctx, result.RunID, StageUpload, "UploadError", errors.New(up.Err),
			map[string]any{"key": result.Filename})
		return
	}
	if !up.Success {
		return // upload not configured
	}

	s.cfg.logf("Uploaded to %s", up.URL)
	if s.cfg.deleteLocal {
		if err := os.Remove(localPath); err != nil {
			// Deletion failure does not change the run outcome.
			s.cfg.logf("Failed to delete local artifact: %v", err)
		} else {
			result.LocalRemoved = true
		}
	}
}

// cleanup deletes intermediate HTML pages when configured. The closing
// page was generated this run too, so it is deleted unless keepClosing
// preserves it. Per-file failures are logged and ignored.
func (s *Service) cleanup(pages []RenderedPage, files []string) {
	if !s.cfg.cleanupHTML {
		return
	}
	for i, path := range files {
		if s.cfg.keepClosing && pages[i].Template == s.cfg.closingPage {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.cfg.logf("Cleanup failed for %s: %v", path, err)
			continue
		}
		s.cfg.logf("Deleted %s", filepath.Base(path))
	}
}

// report builds one error record and forwards it to the sink.
// Sink failures are swallowed: observability never alters run outcome.
func (s *Service) report(ctx context.Context, runID, stage, name string, err error, detail map[string]any) {
	rec := NewErrorRecord(s.cfg.workflowName, runID, stage, name, err, detail)
	if sinkErr := s.sink.Record(ctx, rec); sinkErr != nil {
		s.cfg.logf("Failed to record error %s: %v", rec.ID, sinkErr)
	}
}

// templateOrder returns the configurable template list with the closing
// page appended exactly once, always in the trailing position.
func templateOrder(list []string, closing string) []string {
	out := make([]string, 0, len(list)+1)
	for _, name := range list {
		if name == closing {
			continue
		}
		out = append(out, name)
	}
	return append(out, closing)
}
