package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func findFirst(t *testing.T, root *html.Node, tag string) *html.Node {
	t.Helper()
	nodes := dom.GetElementsByTagName(root, tag)
	require.NotEmpty(t, nodes, "no <%s> found", tag)
	return nodes[0]
}

func TestInnerText(t *testing.T) {
	doc := parse(t, `<html><body><div>hello <b>bold</b> world</div></body></html>`)
	div := findFirst(t, doc, "div")

	assert.Equal(t, "hello bold world", dom.InnerText(div, true, true))
}

func TestInnerText_JoinsMarkupSeparatedText(t *testing.T) {
	doc := parse(t, `<html><body><p>first<span>second</span></p></body></html>`)
	p := findFirst(t, doc, "p")

	// Text separated only by element boundaries must not run together.
	assert.Equal(t, "first second", dom.InnerText(p, true, true))
}

func TestInnerText_NormalizesWhitespace(t *testing.T) {
	doc := parse(t, "<html><body><p>  spaced \n\t out  </p></body></html>")
	p := findFirst(t, doc, "p")

	assert.Equal(t, "spaced out", dom.InnerText(p, true, true))
}

func TestInnerText_EmptyElement(t *testing.T) {
	doc := parse(t, `<html><body><p></p></body></html>`)
	p := findFirst(t, doc, "p")

	assert.Equal(t, "", dom.InnerText(p, true, true))
}

func TestInnerText_IgnoresComments(t *testing.T) {
	doc := parse(t, `<html><body><p>text<!-- hidden --></p></body></html>`)
	p := findFirst(t, doc, "p")

	assert.Equal(t, "text", dom.InnerText(p, true, true))
}

func TestCharCount(t *testing.T) {
	doc := parse(t, `<html><body><p>one, two, three</p></body></html>`)
	p := findFirst(t, doc, "p")

	// Piece count: separators plus one.
	assert.Equal(t, 3, dom.CharCount(p, ","))
}

func TestCharCount_NoSeparator(t *testing.T) {
	doc := parse(t, `<html><body><p>no commas here</p></body></html>`)
	p := findFirst(t, doc, "p")

	assert.Equal(t, 1, dom.CharCount(p, ","))
}

func TestNormalizeSpaces(t *testing.T) {
	assert.Equal(t, "a b c", dom.NormalizeSpaces("  a \t b \n\n c "))
	assert.Equal(t, "", dom.NormalizeSpaces("   "))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 3, dom.WordCount("three small words"))
	assert.Equal(t, 0, dom.WordCount("   "))
}
