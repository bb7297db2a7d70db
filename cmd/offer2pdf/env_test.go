package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-offer2pdf/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("OFFER2PDF_CONFIG", "pipeline")
	t.Setenv("OFFER2PDF_DATA", "offers/today.json")
	t.Setenv("OFFER2PDF_HTML_DIR", "html")
	t.Setenv("OFFER2PDF_PDF_DIR", "pdf")
	t.Setenv("OFFER2PDF_TEMPLATES", "./tpl")
	t.Setenv("OFFER2PDF_BUCKET", "offers-eu")
	t.Setenv("OFFER2PDF_TIMEOUT", "90s")
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_KEY", "secret")

	env := loadEnvConfig()

	if env.ConfigPath != "pipeline" {
		t.Errorf("ConfigPath = %q", env.ConfigPath)
	}
	if env.DataFile != "offers/today.json" {
		t.Errorf("DataFile = %q", env.DataFile)
	}
	if env.HTMLDir != "html" || env.PDFDir != "pdf" {
		t.Errorf("dirs = %q, %q", env.HTMLDir, env.PDFDir)
	}
	if env.Templates != "./tpl" {
		t.Errorf("Templates = %q", env.Templates)
	}
	if env.Bucket != "offers-eu" {
		t.Errorf("Bucket = %q", env.Bucket)
	}
	if env.Timeout != "90s" {
		t.Errorf("Timeout = %q", env.Timeout)
	}
	if env.SupabaseURL != "https://proj.supabase.co" || env.SupabaseKey != "secret" {
		t.Error("supabase credentials not loaded")
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"OFFER2PDF_CONFIG=pipeline",
		"OFFER2PDF_TYPO=value",
		"PATH=/usr/bin",
		"SUPABASE_URL=https://example",
	})

	out := buf.String()
	if !strings.Contains(out, "OFFER2PDF_TYPO") {
		t.Errorf("warning missing unknown variable, got %q", out)
	}
	if strings.Contains(out, "OFFER2PDF_CONFIG") {
		t.Errorf("known variable flagged as unknown: %q", out)
	}
	if strings.Contains(out, "PATH") || strings.Contains(out, "SUPABASE_URL") {
		t.Errorf("non-prefixed variables flagged: %q", out)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	env := &envConfig{
		DataFile:    "env.json",
		HTMLDir:     "env-html",
		PDFDir:      "env-pdf",
		Templates:   "./env-tpl",
		Bucket:      "env-bucket",
		SupabaseURL: "https://proj.supabase.co",
		SupabaseKey: "secret",
	}

	env.applyEnv(cfg)

	if cfg.Input.DataFile != "env.json" {
		t.Errorf("Input.DataFile = %q", cfg.Input.DataFile)
	}
	if cfg.Output.HTMLDir != "env-html" || cfg.Output.PDFDir != "env-pdf" {
		t.Errorf("dirs = %q, %q", cfg.Output.HTMLDir, cfg.Output.PDFDir)
	}
	if cfg.Templates.BasePath != "./env-tpl" {
		t.Errorf("Templates.BasePath = %q", cfg.Templates.BasePath)
	}
	if cfg.Upload.Bucket != "env-bucket" {
		t.Errorf("Upload.Bucket = %q", cfg.Upload.Bucket)
	}
	if cfg.Supabase.URL != "https://proj.supabase.co" || cfg.Supabase.Key != "secret" {
		t.Error("supabase credentials not applied")
	}
}

func TestApplyEnv_EmptyValuesKeepConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	(&envConfig{}).applyEnv(cfg)

	if cfg.Input.DataFile != "data.json" {
		t.Errorf("Input.DataFile = %q, want untouched default", cfg.Input.DataFile)
	}
	if cfg.Upload.Bucket != "offers" {
		t.Errorf("Upload.Bucket = %q, want untouched default", cfg.Upload.Bucket)
	}
}
