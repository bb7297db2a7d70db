package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directory.
// Asset names are plain file or directory names: no separators, no
// parent references, no null bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator or null byte", ErrInvalidAssetName, name)
	}
	if name == "." || name == ".." || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains parent reference", ErrInvalidAssetName, name)
	}
	return nil
}
