package offer2pdf

import (
	"strings"
	"unicode"
)

// DefaultArtifactBase is the fallback PDF base name used when the client
// name sanitizes to nothing usable.
const DefaultArtifactBase = "offer"

// DeriveFilename maps a client display name to a sanitized PDF filename.
// Alphanumerics, spaces, hyphens and underscores are kept; every other
// rune is replaced one-for-one by an underscore. The function is
// deterministic, so re-running a workflow with the same offer overwrites
// the previous artifact instead of accumulating files.
func DeriveFilename(clientName string) string {
	var b strings.Builder
	b.Grow(len(clientName))
	for _, r := range clientName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	base := b.String()
	if strings.Trim(base, "_ ") == "" {
		base = DefaultArtifactBase
	}
	return base + ".pdf"
}
