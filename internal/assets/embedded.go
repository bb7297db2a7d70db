package assets

import (
	"embed"
	"fmt"
)

//go:embed templates
var templates embed.FS

// embeddedLoader reads templates from the compiled-in defaults.
type embeddedLoader struct{}

// LoadTemplate loads an embedded template by set directory and file name.
func (embeddedLoader) LoadTemplate(setDir, name string) (string, error) {
	if err := ValidateAssetName(setDir); err != nil {
		return "", err
	}
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + setDir + "/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, setDir, name)
	}
	return string(content), nil
}
