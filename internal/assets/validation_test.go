package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		asset   string
		wantErr error
	}{
		{name: "plain file name", asset: "coverpage.html", wantErr: nil},
		{name: "set directory name", asset: "templates-polish", wantErr: nil},
		{name: "empty", asset: "", wantErr: ErrInvalidAssetName},
		{name: "forward slash", asset: "a/b.html", wantErr: ErrInvalidAssetName},
		{name: "backslash", asset: `a\b.html`, wantErr: ErrInvalidAssetName},
		{name: "null byte", asset: "a\x00b", wantErr: ErrInvalidAssetName},
		{name: "dot", asset: ".", wantErr: ErrInvalidAssetName},
		{name: "dot dot", asset: "..", wantErr: ErrInvalidAssetName},
		{name: "embedded parent reference", asset: "a..b", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAssetName(tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.asset, err, tt.wantErr)
			}
		})
	}
}
