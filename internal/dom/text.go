package dom

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// NORMALIZE_RE collapses any whitespace run into a single space.
var NORMALIZE_RE = regexp.MustCompile(`\s+`)

// NormalizeSpaces collapses runs of whitespace to single spaces and trims
// the ends.
func NormalizeSpaces(text string) string {
	return strings.TrimSpace(NORMALIZE_RE.ReplaceAllString(text, " "))
}

// InnerText returns the text content of a node. Child pieces are joined
// with single spaces at every level, so text separated only by markup does
// not run together. trim strips the ends; normalize collapses interior
// whitespace runs.
func InnerText(node *html.Node, trim, normalize bool) string {
	if node == nil {
		return ""
	}

	var text string
	switch node.Type {
	case html.TextNode:
		text = node.Data
	case html.CommentNode:
		return ""
	default:
		if node.FirstChild == nil {
			return ""
		}
		var pieces []string
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			pieces = append(pieces, InnerText(c, trim, normalize))
		}
		text = strings.Join(pieces, " ")
	}

	if trim {
		text = strings.TrimSpace(text)
	}
	if normalize {
		text = NORMALIZE_RE.ReplaceAllString(text, " ")
	}
	return text
}

// CharCount returns the number of separator-delimited pieces in the inner
// text, i.e. occurrences plus one. The conditional cleaner keys its comma
// threshold off this piece count, not the raw separator count.
func CharCount(node *html.Node, sep string) int {
	return len(strings.Split(InnerText(node, true, true), sep))
}

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
