package offer2pdf

import "testing"

func TestResolveTemplateSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tag      string
		wantLang string
		wantDir  string
	}{
		{
			name:     "english",
			tag:      "english",
			wantLang: LanguageEnglish,
			wantDir:  "templates-english",
		},
		{
			name:     "polish",
			tag:      "polish",
			wantLang: LanguagePolish,
			wantDir:  "templates-polish",
		},
		{
			name:     "mixed case",
			tag:      "Polish",
			wantLang: LanguagePolish,
			wantDir:  "templates-polish",
		},
		{
			name:     "surrounding whitespace",
			tag:      "  ENGLISH  ",
			wantLang: LanguageEnglish,
			wantDir:  "templates-english",
		},
		{
			name:     "empty tag defaults to english",
			tag:      "",
			wantLang: LanguageEnglish,
			wantDir:  "templates-english",
		},
		{
			name:     "unknown tag defaults to english",
			tag:      "german",
			wantLang: LanguageEnglish,
			wantDir:  "templates-english",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set := ResolveTemplateSet(tt.tag)
			if set.Language != tt.wantLang {
				t.Errorf("ResolveTemplateSet(%q).Language = %q, want %q", tt.tag, set.Language, tt.wantLang)
			}
			if set.Dir != tt.wantDir {
				t.Errorf("ResolveTemplateSet(%q).Dir = %q, want %q", tt.tag, set.Dir, tt.wantDir)
			}
		})
	}
}
