package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-offer2pdf/internal/yamlutil"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ---------------------------------------------------------------------------
// TestDecode - Strict decoding and input validation
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.Decode([]byte("name: offers\ncount: 3\n"), &doc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Name != "offers" || doc.Count != 3 {
		t.Errorf("Decode() = %+v, want {offers 3}", doc)
	}
}

func TestDecode_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name:    "nil data",
			data:    nil,
			dest:    &testDoc{},
			wantErr: yamlutil.ErrEmptyDocument,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testDoc{},
			wantErr: yamlutil.ErrEmptyDocument,
		},
		{
			name:    "nil destination",
			data:    []byte("name: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "oversized document",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxDocumentSize)),
			dest:    &testDoc{},
			wantErr: yamlutil.ErrDocumentTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Decode(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_MalformedYAML(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.Decode([]byte("name: [unclosed"), &doc)
	if err == nil {
		t.Fatal("Decode() expected error for malformed YAML, got nil")
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.Decode([]byte("name: offers\nunknown: field\n"), &doc)
	if err == nil {
		t.Fatal("Decode() expected error for unknown field, got nil")
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Round trip
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Encode(testDoc{Name: "offers", Count: 2})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var doc testDoc
	if err := yamlutil.Decode(data, &doc); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Name != "offers" || doc.Count != 2 {
		t.Errorf("round trip = %+v, want {offers 2}", doc)
	}
}
