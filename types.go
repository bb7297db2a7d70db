package offer2pdf

import "time"

// Default working layout, matching the conventional on-disk layout the
// workflow has always used.
const (
	DefaultDataFile = "data.json"
	DefaultHTMLDir  = "htmlGenerated"
	DefaultPDFDir   = "finalPdf"

	// DefaultClosingPage is the distinguished trailing page appended
	// after the configurable template list on every run.
	DefaultClosingPage = "endingpage.html"
)

// defaultTemplateList is the configurable part of the template set.
func defaultTemplateList() []string {
	return []string{"coverpage.html", "page1.html", "page2.html", "page3.html"}
}

// defaultTimeout bounds a single browser page load.
const defaultTimeout = 60 * time.Second

// defaultWorkflowName identifies this pipeline in error records.
const defaultWorkflowName = "pdf-generation-workflow"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Logf receives human-readable progress lines. The default discards them.
type Logf func(format string, args ...any)

// serviceConfig holds internal configuration for Service. Defaulting is
// resolved once, in New, so stage logic never consults the environment.
type serviceConfig struct {
	workflowName  string
	htmlDir       string
	pdfDir        string
	templatesBase string   // custom template base path, empty = embedded only
	templateList  []string // ordered configurable templates
	closingPage   string
	cleanupHTML   bool
	keepClosing   bool
	deleteLocal   bool
	timeout       time.Duration
	logf          Logf
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the browser page-load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("offer2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithOutputDirs sets the directories for intermediate HTML pages and
// the final PDF artifact. Empty values keep the defaults.
func WithOutputDirs(htmlDir, pdfDir string) Option {
	return func(s *Service) {
		if htmlDir != "" {
			s.cfg.htmlDir = htmlDir
		}
		if pdfDir != "" {
			s.cfg.pdfDir = pdfDir
		}
	}
}

// WithTemplatesPath points template loading at a custom base directory.
// Templates missing there fall back to the embedded defaults.
func WithTemplatesPath(basePath string) Option {
	return func(s *Service) {
		s.cfg.templatesBase = basePath
	}
}

// WithTemplateList overrides the configurable template list. The closing
// page need not be listed; it is always appended last.
func WithTemplateList(names ...string) Option {
	return func(s *Service) {
		s.cfg.templateList = names
	}
}

// WithClosingPage overrides the distinguished trailing template name.
func WithClosingPage(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cfg.closingPage = name
		}
	}
}

// WithCleanup controls deletion of intermediate HTML pages after a
// successful run. keepClosingPage preserves the closing page artifact,
// restoring the legacy behavior that treated it as permanent.
func WithCleanup(cleanupHTML, keepClosingPage bool) Option {
	return func(s *Service) {
		s.cfg.cleanupHTML = cleanupHTML
		s.cfg.keepClosing = keepClosingPage
	}
}

// WithDeleteLocalAfterUpload removes the local artifact once an upload
// succeeds. Without a successful upload the local file always remains.
func WithDeleteLocalAfterUpload(v bool) Option {
	return func(s *Service) {
		s.cfg.deleteLocal = v
	}
}

// WithUploader configures the object store collaborator. Absent this
// option the upload stage is a no-op.
func WithUploader(u Uploader) Option {
	return func(s *Service) {
		if u != nil {
			s.uploader = u
		}
	}
}

// WithErrorSink configures the observability sink for error records.
// Absent this option records are dropped.
func WithErrorSink(sink ErrorSink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithWorkflowName overrides the workflow identifier used in error records.
func WithWorkflowName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.cfg.workflowName = name
		}
	}
}

// WithLogf sets the progress logger.
func WithLogf(logf Logf) Option {
	return func(s *Service) {
		if logf != nil {
			s.cfg.logf = logf
		}
	}
}
