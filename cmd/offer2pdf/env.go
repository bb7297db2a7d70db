package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-offer2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // OFFER2PDF_CONFIG: config file name or path
	DataFile    string // OFFER2PDF_DATA: offer record path
	HTMLDir     string // OFFER2PDF_HTML_DIR: intermediate HTML directory
	PDFDir      string // OFFER2PDF_PDF_DIR: final PDF directory
	Templates   string // OFFER2PDF_TEMPLATES: custom template base path
	Bucket      string // OFFER2PDF_BUCKET: object store bucket
	Timeout     string // OFFER2PDF_TIMEOUT: overall run timeout
	SupabaseURL string // SUPABASE_URL: backend project URL
	SupabaseKey string // SUPABASE_KEY: backend API key
}

// knownEnvVars lists valid OFFER2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"OFFER2PDF_CONFIG":    true,
	"OFFER2PDF_DATA":      true,
	"OFFER2PDF_HTML_DIR":  true,
	"OFFER2PDF_PDF_DIR":   true,
	"OFFER2PDF_TEMPLATES": true,
	"OFFER2PDF_BUCKET":    true,
	"OFFER2PDF_TIMEOUT":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:  os.Getenv("OFFER2PDF_CONFIG"),
		DataFile:    os.Getenv("OFFER2PDF_DATA"),
		HTMLDir:     os.Getenv("OFFER2PDF_HTML_DIR"),
		PDFDir:      os.Getenv("OFFER2PDF_PDF_DIR"),
		Templates:   os.Getenv("OFFER2PDF_TEMPLATES"),
		Bucket:      os.Getenv("OFFER2PDF_BUCKET"),
		Timeout:     os.Getenv("OFFER2PDF_TIMEOUT"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
	}
}

// warnUnknownEnvVars reports OFFER2PDF_* variables that are not recognized.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "OFFER2PDF_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s\n", name)
		}
	}
}

// applyEnv overlays environment values onto the loaded config.
// Flags still take precedence; they are applied after this.
func (e *envConfig) applyEnv(cfg *config.Config) {
	if e.DataFile != "" {
		cfg.Input.DataFile = e.DataFile
	}
	if e.HTMLDir != "" {
		cfg.Output.HTMLDir = e.HTMLDir
	}
	if e.PDFDir != "" {
		cfg.Output.PDFDir = e.PDFDir
	}
	if e.Templates != "" {
		cfg.Templates.BasePath = e.Templates
	}
	if e.Bucket != "" {
		cfg.Upload.Bucket = e.Bucket
	}
	if e.SupabaseURL != "" {
		cfg.Supabase.URL = e.SupabaseURL
	}
	if e.SupabaseKey != "" {
		cfg.Supabase.Key = e.SupabaseKey
	}
}
