package assets

import "errors"

// Loader resolves templates custom-first with an embedded fallback.
type Loader struct {
	custom   *filesystemLoader // nil if no custom path configured
	embedded embeddedLoader
}

// NewLoader creates a Loader. An empty basePath uses embedded templates
// only; otherwise custom templates take precedence and anything missing
// falls back to the embedded defaults.
func NewLoader(basePath string) (*Loader, error) {
	l := &Loader{}
	if basePath != "" {
		fsLoader, err := newFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		l.custom = fsLoader
	}
	return l, nil
}

// LoadTemplate loads one template from a set directory.
func (l *Loader) LoadTemplate(setDir, name string) (string, error) {
	if l.custom == nil {
		return l.embedded.LoadTemplate(setDir, name)
	}

	content, err := l.custom.LoadTemplate(setDir, name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return l.embedded.LoadTemplate(setDir, name)
}

// HasCustomLoader reports whether a custom base path is configured.
func (l *Loader) HasCustomLoader() bool {
	return l.custom != nil
}
