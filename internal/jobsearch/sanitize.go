package jobsearch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML reduces a provider description to plain text. Providers
// embed markup in descriptions; matching operates on text only. Input
// without markup passes through with whitespace collapsed.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return collapseWhitespace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
