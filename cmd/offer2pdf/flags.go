package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line options.
type cliFlags struct {
	config      string
	htmlDir     string
	pdfDir      string
	templates   string
	bucket      string
	timeout     string
	noCleanup   bool
	keepClosing bool
	noUpload    bool
	deleteLocal bool
	quiet       bool
	verbose     bool
	version     bool
	help        bool

	dataFile string // positional, optional
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("offer2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported by the caller

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.htmlDir, "html-dir", "", "directory for intermediate HTML pages")
	fs.StringVar(&f.pdfDir, "pdf-dir", "", "directory for the final PDF")
	fs.StringVar(&f.templates, "templates", "", "custom template base directory")
	fs.StringVar(&f.bucket, "bucket", "", "object store bucket for upload")
	fs.StringVar(&f.timeout, "timeout", "", "overall run timeout (e.g. 5m, 90s)")
	fs.BoolVar(&f.noCleanup, "no-cleanup", false, "keep intermediate HTML pages")
	fs.BoolVar(&f.keepClosing, "keep-closing-page", false, "never delete the closing page artifact")
	fs.BoolVar(&f.noUpload, "no-upload", false, "skip the upload stage")
	fs.BoolVar(&f.deleteLocal, "delete-local", false, "delete the local PDF after a successful upload")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
		// Default data file resolved later from config.
	case 1:
		f.dataFile = rest[0]
	default:
		return nil, fmt.Errorf("%w: expected at most one data file, got %d arguments", ErrInvalidFlags, len(rest))
	}

	return f, nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: offer2pdf [flags] [data.json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate an offer PDF from a JSON record and optionally upload it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  data.json                 Offer record (default from config, usually ./data.json)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html-dir <path>     Directory for intermediate HTML pages")
	fmt.Fprintln(w, "      --pdf-dir <path>      Directory for the final PDF")
	fmt.Fprintln(w, "      --templates <path>    Custom template base directory")
	fmt.Fprintln(w, "      --bucket <name>       Object store bucket for upload")
	fmt.Fprintln(w, "      --timeout <dur>       Overall run timeout (e.g. 5m, 90s)")
	fmt.Fprintln(w, "      --no-cleanup          Keep intermediate HTML pages")
	fmt.Fprintln(w, "      --keep-closing-page   Never delete the closing page artifact")
	fmt.Fprintln(w, "      --no-upload           Skip the upload stage")
	fmt.Fprintln(w, "      --delete-local        Delete the local PDF after a successful upload")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SUPABASE_URL, SUPABASE_KEY   Credentials for upload and error logging")
	fmt.Fprintln(w, "  OFFER2PDF_CONFIG             Config file (same as --config)")
	fmt.Fprintln(w, "  OFFER2PDF_TEMPLATES          Custom template base directory")
	fmt.Fprintln(w, "  OFFER2PDF_BUCKET             Object store bucket")
	fmt.Fprintln(w, "  OFFER2PDF_TIMEOUT            Overall run timeout")
}
