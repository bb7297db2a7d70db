package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	offer2pdf "github.com/alnah/go-offer2pdf"
	"github.com/alnah/go-offer2pdf/internal/config"
	"github.com/alnah/go-offer2pdf/internal/errlog"
	"github.com/alnah/go-offer2pdf/internal/objstore"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags   = errors.New("invalid arguments")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// run wires configuration, collaborators and the service, then executes
// one pipeline run. It is separated from main for testability.
func run(ctx context.Context, flags *cliFlags, env *envConfig, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags, env, cfg)
	if err != nil {
		return err
	}

	logf := func(string, ...any) {}
	if flags.verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	opts := []offer2pdf.Option{
		offer2pdf.WithOutputDirs(cfg.Output.HTMLDir, cfg.Output.PDFDir),
		offer2pdf.WithTemplateList(cfg.Templates.Pages...),
		offer2pdf.WithClosingPage(cfg.Templates.ClosingPage),
		offer2pdf.WithCleanup(cfg.Cleanup.HTML, cfg.Cleanup.KeepClosingPage),
		offer2pdf.WithDeleteLocalAfterUpload(cfg.Upload.DeleteLocal),
		offer2pdf.WithLogf(logf),
	}
	if cfg.Templates.BasePath != "" {
		opts = append(opts, offer2pdf.WithTemplatesPath(cfg.Templates.BasePath))
	}

	// Collaborators degrade gracefully: without credentials the pipeline
	// runs with its built-in no-op uploader and sink.
	if cfg.Upload.Enabled && cfg.Supabase.URL != "" && cfg.Supabase.Key != "" {
		store, err := objstore.New(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Upload.Bucket)
		if err != nil {
			return err
		}
		opts = append(opts, offer2pdf.WithUploader(store))
	} else if cfg.Upload.Enabled {
		fmt.Fprintln(stderr, "Warning: upload enabled but SUPABASE_URL/SUPABASE_KEY not set; skipping upload")
	}
	if cfg.Supabase.URL != "" && cfg.Supabase.Key != "" {
		sink, err := errlog.New(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.ErrorTable)
		if err != nil {
			return err
		}
		opts = append(opts, offer2pdf.WithErrorSink(sink))
	}

	svc, err := offer2pdf.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	dataFile := flags.dataFile
	if dataFile == "" {
		dataFile = cfg.Input.DataFile
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := svc.Run(runCtx, dataFile)
	if err != nil {
		// A timed-out run is failed; its partial outputs must be discarded.
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("run timed out after %s: %w", timeout, err)
		}
		return err
	}

	if !flags.quiet {
		fmt.Fprintln(stdout, result.Location())
	}
	if flags.verbose && len(result.SkippedTemplates) > 0 {
		fmt.Fprintf(stderr, "Skipped templates: %v\n", result.SkippedTemplates)
	}
	return nil
}

// resolveConfig loads the config file named by flag or env, falling back
// to defaults when neither names one, and applies env then flag overrides.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	var cfg *config.Config
	var err error

	switch {
	case flags.config != "":
		cfg, err = config.LoadConfig(flags.config)
	case env.ConfigPath != "":
		cfg, err = config.LoadConfig(env.ConfigPath)
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	env.applyEnv(cfg)

	// Flags win over file and environment.
	if flags.htmlDir != "" {
		cfg.Output.HTMLDir = flags.htmlDir
	}
	if flags.pdfDir != "" {
		cfg.Output.PDFDir = flags.pdfDir
	}
	if flags.templates != "" {
		cfg.Templates.BasePath = flags.templates
	}
	if flags.bucket != "" {
		cfg.Upload.Bucket = flags.bucket
	}
	if flags.noCleanup {
		cfg.Cleanup.HTML = false
	}
	if flags.keepClosing {
		cfg.Cleanup.KeepClosingPage = true
	}
	if flags.noUpload {
		cfg.Upload.Enabled = false
	}
	if flags.deleteLocal {
		cfg.Upload.DeleteLocal = true
	}

	return cfg, nil
}

// resolveTimeout picks the overall run timeout: flag, then env, then config.
func resolveTimeout(flags *cliFlags, env *envConfig, cfg *config.Config) (time.Duration, error) {
	raw := flags.timeout
	if raw == "" {
		raw = env.Timeout
	}
	if raw == "" {
		return time.Duration(cfg.TimeoutSeconds) * time.Second, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return d, nil
}
