package dom

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// LinkDensity returns the share of a node's inner text that sits inside
// descendant anchors. A node with no text at all reports density 1, which
// keeps pure-link containers maximally penalized.
func LinkDensity(node *html.Node) float64 {
	textLength := len(InnerText(node, true, true))
	if textLength == 0 {
		return 1
	}

	linkLength := 0
	for _, link := range GetElementsByTagName(node, "a") {
		linkLength += len(InnerText(link, true, true))
	}

	return float64(linkLength) / float64(textLength)
}

// MakeLinksAbsolute rewrites relative href and src attributes under root
// against the document URL. Fragment-only links, absolute links, and
// scheme-special links (javascript:, mailto:) are left alone.
func MakeLinksAbsolute(root *html.Node, rawURL string) {
	if rawURL == "" {
		return
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return
	}

	absolutize(root, base, "a", "href")
	absolutize(root, base, "img", "src")
}

func absolutize(root *html.Node, base *url.URL, tag, attr string) {
	for _, node := range GetElementsByTagName(root, tag) {
		value := GetAttribute(node, attr)
		if value == "" || strings.HasPrefix(value, "#") {
			continue
		}
		if strings.HasPrefix(value, "javascript:") || strings.HasPrefix(value, "mailto:") {
			continue
		}
		ref, err := url.Parse(value)
		if err != nil || ref.IsAbs() {
			continue
		}
		SetAttribute(node, attr, base.ResolveReference(ref).String())
	}
}

// HasSentenceEnd reports whether text looks like it ends a sentence: a
// period followed by a space or the end of the string.
func HasSentenceEnd(text string) bool {
	return SENTENCE_END_RE.MatchString(text)
}
