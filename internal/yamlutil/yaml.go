// Package yamlutil decodes the pipeline's YAML configuration files.
//
// Decoding is strict: an unknown key fails loudly instead of silently
// leaving a default in place, which is the failure mode that matters for
// operator-written config. The size cap is far above any plausible
// config file and guards against pointing the loader at the wrong file.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps YAML input (default 256KB).
var MaxDocumentSize = 256 << 10

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrNilDestination   = errors.New("yamlutil: nil destination pointer")
	ErrDocumentTooLarge = errors.New("yamlutil: document exceeds maximum size")
)

// Decode strictly unmarshals a YAML document into v, rejecting unknown
// fields so config typos surface as errors.
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode marshals v to YAML.
func Encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return data, nil
}
