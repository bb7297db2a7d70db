// Package config loads the offer2pdf pipeline configuration.
//
// Configuration comes from a YAML file resolved by name or path, with
// environment overrides applied by the CLI at a single point. Defaulting
// happens here so the pipeline itself never consults the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-offer2pdf/internal/fileutil"
	"github.com/alnah/go-offer2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for the PDF generation pipeline.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
	Upload    UploadConfig    `yaml:"upload"`
	Supabase  SupabaseConfig  `yaml:"supabase"`
	// TimeoutSeconds bounds a full run; the caller enforces it.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DataFile string `yaml:"dataFile"` // Default offer record path
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	HTMLDir string `yaml:"htmlDir"` // Intermediate HTML pages
	PDFDir  string `yaml:"pdfDir"`  // Final PDF artifact
}

// TemplatesConfig defines template resolution options.
type TemplatesConfig struct {
	BasePath    string   `yaml:"basePath"`    // Empty = embedded templates
	Pages       []string `yaml:"pages"`       // Configurable template list
	ClosingPage string   `yaml:"closingPage"` // Always appended last
}

// CleanupConfig defines post-run cleanup options.
type CleanupConfig struct {
	HTML bool `yaml:"html"` // Delete intermediate HTML pages
	// KeepClosingPage preserves the closing page artifact, restoring the
	// legacy behavior that treated it as permanent.
	KeepClosingPage bool `yaml:"keepClosingPage"`
}

// UploadConfig defines object store options.
type UploadConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Bucket      string `yaml:"bucket"`
	DeleteLocal bool   `yaml:"deleteLocalAfterUpload"`
}

// SupabaseConfig holds backend credentials for upload and error logging.
// Empty values disable the corresponding collaborator.
type SupabaseConfig struct {
	URL        string `yaml:"url"`
	Key        string `yaml:"key"`
	ErrorTable string `yaml:"errorTable"`
}

// DefaultConfig returns the conventional local layout with upload
// disabled and cleanup enabled.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DataFile: "data.json"},
		Output: OutputConfig{HTMLDir: "htmlGenerated", PDFDir: "finalPdf"},
		Templates: TemplatesConfig{
			Pages:       []string{"coverpage.html", "page1.html", "page2.html", "page3.html"},
			ClosingPage: "endingpage.html",
		},
		Cleanup:        CleanupConfig{HTML: true},
		Upload:         UploadConfig{Bucket: "offers"},
		Supabase:       SupabaseConfig{ErrorTable: "execution_errors"},
		TimeoutSeconds: 300,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-offer2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-offer2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
