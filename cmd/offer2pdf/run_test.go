package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-offer2pdf/internal/config"
)

func TestResolveConfig_FlagOverrides(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{
		htmlDir:     "flag-html",
		pdfDir:      "flag-pdf",
		templates:   "./flag-tpl",
		bucket:      "flag-bucket",
		noCleanup:   true,
		keepClosing: true,
		noUpload:    true,
		deleteLocal: true,
	}

	cfg, err := resolveConfig(flags, &envConfig{})
	if err != nil {
		t.Fatalf("resolveConfig() unexpected error: %v", err)
	}

	if cfg.Output.HTMLDir != "flag-html" || cfg.Output.PDFDir != "flag-pdf" {
		t.Errorf("dirs = %q, %q", cfg.Output.HTMLDir, cfg.Output.PDFDir)
	}
	if cfg.Templates.BasePath != "./flag-tpl" {
		t.Errorf("Templates.BasePath = %q", cfg.Templates.BasePath)
	}
	if cfg.Upload.Bucket != "flag-bucket" {
		t.Errorf("Upload.Bucket = %q", cfg.Upload.Bucket)
	}
	if cfg.Cleanup.HTML {
		t.Error("Cleanup.HTML = true, --no-cleanup should disable it")
	}
	if !cfg.Cleanup.KeepClosingPage {
		t.Error("Cleanup.KeepClosingPage = false, want true")
	}
	if cfg.Upload.Enabled {
		t.Error("Upload.Enabled = true, --no-upload should disable it")
	}
	if !cfg.Upload.DeleteLocal {
		t.Error("Upload.DeleteLocal = false, want true")
	}
}

func TestResolveConfig_FlagsWinOverEnv(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{bucket: "flag-bucket"}
	env := &envConfig{Bucket: "env-bucket", HTMLDir: "env-html"}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		t.Fatalf("resolveConfig() unexpected error: %v", err)
	}

	if cfg.Upload.Bucket != "flag-bucket" {
		t.Errorf("Upload.Bucket = %q, flag should win over env", cfg.Upload.Bucket)
	}
	if cfg.Output.HTMLDir != "env-html" {
		t.Errorf("Output.HTMLDir = %q, env should win over default", cfg.Output.HTMLDir)
	}
}

func TestResolveConfig_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	content := "output:\n  pdfDir: from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(&cliFlags{config: path}, &envConfig{})
	if err != nil {
		t.Fatalf("resolveConfig() unexpected error: %v", err)
	}
	if cfg.Output.PDFDir != "from-file" {
		t.Errorf("Output.PDFDir = %q, want from-file", cfg.Output.PDFDir)
	}
}

func TestResolveConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := resolveConfig(&cliFlags{config: filepath.Join(t.TempDir(), "missing.yaml")}, &envConfig{})
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("resolveConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig() // 300 seconds

	tests := []struct {
		name    string
		flag    string
		env     string
		want    time.Duration
		wantErr error
	}{
		{
			name: "config default",
			want: 300 * time.Second,
		},
		{
			name: "env override",
			env:  "90s",
			want: 90 * time.Second,
		},
		{
			name: "flag wins over env",
			flag: "2m",
			env:  "90s",
			want: 2 * time.Minute,
		},
		{
			name:    "unparseable",
			flag:    "soon",
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "zero duration",
			flag:    "0s",
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative duration",
			flag:    "-5s",
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(&cliFlags{timeout: tt.flag}, &envConfig{Timeout: tt.env}, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveTimeout() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveTimeout() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
