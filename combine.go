package offer2pdf

import "strings"

// pageBreak forces each rendered page to start on a fresh PDF page when
// the combined document is printed.
const pageBreak = `<div style="page-break-before: always;"></div>`

// combinePages concatenates rendered pages in order into one virtual
// document, inserting an explicit page-break marker between each pair.
func combinePages(pages []RenderedPage) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString(pageBreak)
		}
		b.WriteString(p.HTML)
	}
	return b.String()
}
