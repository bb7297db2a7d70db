package offer2pdf

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/alnah/go-offer2pdf/internal/assets"
)

// RenderedPage is one rendered template in its final page position.
type RenderedPage struct {
	Template string // template file name, e.g. "coverpage.html"
	HTML     string // rendered document
}

// pageRenderer abstracts template rendering to enable testing without
// template assets on disk.
type pageRenderer interface {
	Render(ctx context.Context, setDir, name string, data map[string]any) (string, error)
}

// pongoRenderer renders Django-syntax HTML templates with pongo2.
// The original offer templates use this syntax, so template sets keep
// working unchanged whether loaded from disk or from embedded defaults.
type pongoRenderer struct {
	loader *assets.Loader
}

// newPongoRenderer creates a renderer backed by the given asset loader.
func newPongoRenderer(loader *assets.Loader) *pongoRenderer {
	return &pongoRenderer{loader: loader}
}

// Compile-time interface check.
var _ pageRenderer = (*pongoRenderer)(nil)

// Render loads and renders a single template against the offer data.
// Returns ErrTemplateNotFound, ErrTemplateParse, or ErrTemplateRender
// for the caller to classify.
func (r *pongoRenderer) Render(ctx context.Context, setDir, name string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := r.loader.LoadTemplate(setDir, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %v", ErrTemplateNotFound, setDir, name, err)
	}

	tpl, err := pongo2.FromString(src)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}

	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	return out, nil
}
