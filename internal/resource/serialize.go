package resource

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Runs of break tags padded with whitespace or non-breaking-space fillers
// collapse into a single self-closed break.
var KILL_BREAKS_RE = regexp.MustCompile(`(?i)(<br\s*/?>(\s|&nbsp;?)*)+`)

// A break immediately before an opening paragraph is redundant.
var BR_BEFORE_P_RE = regexp.MustCompile(`(?i)<br[^>]*>\s*<p`)

// Serialize renders a node to HTML and applies the two textual
// post-processing substitutions.
func Serialize(node *html.Node) (string, error) {
	doc := goquery.NewDocumentFromNode(node)
	rendered, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return "", err
	}
	return CleanBreaks(rendered), nil
}

// CleanBreaks collapses break-tag runs to "<br />" and removes breaks
// that sit directly before a paragraph.
func CleanBreaks(output string) string {
	output = KILL_BREAKS_RE.ReplaceAllString(output, "<br />")
	output = BR_BEFORE_P_RE.ReplaceAllString(output, "<p")
	return output
}
