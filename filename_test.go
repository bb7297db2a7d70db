package offer2pdf

import "testing"

func TestDeriveFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		client string
		want   string
	}{
		{
			name:   "plain ascii name",
			client: "Acme",
			want:   "Acme.pdf",
		},
		{
			name:   "spaces and hyphens kept",
			client: "Acme Gift-Sets",
			want:   "Acme Gift-Sets.pdf",
		},
		{
			name:   "special characters replaced one for one",
			client: "Acme™ Co!!",
			want:   "Acme_ Co__.pdf",
		},
		{
			name:   "unicode letters kept",
			client: "Żółć Sp. z o.o.",
			want:   "Żółć Sp_ z o_o_.pdf",
		},
		{
			name:   "empty name falls back",
			client: "",
			want:   "offer.pdf",
		},
		{
			name:   "all-special name falls back",
			client: "!!!***",
			want:   "offer.pdf",
		},
		{
			name:   "whitespace and underscores only falls back",
			client: "  __ ",
			want:   "offer.pdf",
		},
		{
			name:   "digits kept",
			client: "Client 42",
			want:   "Client 42.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DeriveFilename(tt.client)
			if got != tt.want {
				t.Errorf("DeriveFilename(%q) = %q, want %q", tt.client, got, tt.want)
			}
		})
	}
}

func TestDeriveFilename_Deterministic(t *testing.T) {
	t.Parallel()

	// Same input must map to the same artifact name so reruns overwrite
	// instead of accumulating files.
	first := DeriveFilename("Acme™ Co!!")
	second := DeriveFilename("Acme™ Co!!")
	if first != second {
		t.Errorf("DeriveFilename not deterministic: %q vs %q", first, second)
	}
}
