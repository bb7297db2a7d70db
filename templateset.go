package offer2pdf

import "strings"

// Recognized offer languages.
const (
	LanguageEnglish = "english"
	LanguagePolish  = "polish"

	// DefaultLanguage is used when the offer carries no recognized
	// language tag.
	DefaultLanguage = LanguageEnglish
)

// Template set directory names, one disjoint directory per language.
const (
	templateDirEnglish = "templates-english"
	templateDirPolish  = "templates-polish"
)

// TemplateSet is the per-language group of templates used for one run.
type TemplateSet struct {
	Language string // normalized language name
	Dir      string // template directory for that language
}

// ResolveTemplateSet maps an offer language tag to its template set.
// The tag is trimmed and case-folded; an unrecognized or empty tag
// silently resolves to the default language. This function is total:
// it never fails.
func ResolveTemplateSet(tag string) TemplateSet {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case LanguagePolish:
		return TemplateSet{Language: LanguagePolish, Dir: templateDirPolish}
	case LanguageEnglish:
		return TemplateSet{Language: LanguageEnglish, Dir: templateDirEnglish}
	default:
		return TemplateSet{Language: DefaultLanguage, Dir: templateDirEnglish}
	}
}
