package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

func TestPrepareDocument_RemovesScriptsAndStyles(t *testing.T) {
	e := newTestExtractor(DefaultFlags())
	doc := parseDoc(t, `<html><head>
		<script src="app.js"></script>
		<style>body { color: red }</style>
		<link rel="stylesheet" href="main.css">
		<link rel="canonical" href="https://example.com/post">
	</head><body>
		<script>alert(1)</script>
		<p>content</p>
	</body></html>`)

	e.prepareDocument(doc)

	assert.Empty(t, dom.GetElementsByTagName(doc, "script"))
	assert.Empty(t, dom.GetElementsByTagName(doc, "style"))

	links := dom.GetElementsByTagName(doc, "link")
	require.Len(t, links, 1, "only the stylesheet link is removed")
	assert.Equal(t, "canonical", dom.GetAttribute(links[0], "rel"))
}

func TestPrepareDocument_FontBecomesSpan(t *testing.T) {
	e := newTestExtractor(DefaultFlags())
	doc := parseDoc(t, `<html><body><font size="3" color="red">styled text</font></body></html>`)

	e.prepareDocument(doc)

	assert.Empty(t, dom.GetElementsByTagName(doc, "font"))
	spans := dom.GetElementsByTagName(doc, "span")
	require.Len(t, spans, 1)
	assert.Equal(t, "red", dom.GetAttribute(spans[0], "color"))
	assert.Equal(t, "styled text", dom.InnerText(spans[0], true, true))
}

func TestPrepareDocument_EscapesTextareaPayload(t *testing.T) {
	e := newTestExtractor(DefaultFlags())
	doc := parseDoc(t, `<html><body><textarea><b>not markup</b></textarea></body></html>`)

	e.prepareDocument(doc)

	ta := first(t, doc, "textarea")
	var payload strings.Builder
	for c := ta.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			payload.WriteString(c.Data)
		}
	}
	assert.Equal(t, "&lt;b&gt;not markup&lt;/b&gt;", payload.String())
}

func TestPrepareDocument_EnsuresStructure(t *testing.T) {
	e := newTestExtractor(DefaultFlags())

	// The lenient parser synthesizes the skeleton even for a fragment.
	doc := parseDoc(t, `<p>bare fragment</p>`)
	e.prepareDocument(doc)

	assert.Len(t, dom.GetElementsByTagName(doc, "html"), 1)
	assert.Len(t, dom.GetElementsByTagName(doc, "head"), 1)
	assert.Len(t, dom.GetElementsByTagName(doc, "body"), 1)
}

func TestMergeBodies(t *testing.T) {
	// Build a two-body tree by hand; a parser never produces one.
	doc := parseDoc(t, `<html><body><p>one</p></body></html>`)
	root := first(t, doc, "html")
	extra := dom.CreateElement("body")
	p := dom.CreateElement("p")
	dom.AppendChild(p, dom.CreateTextNode("two"))
	dom.AppendChild(extra, p)
	dom.AppendChild(root, extra)

	mergeBodies(doc)

	bodies := dom.GetElementsByTagName(doc, "body")
	require.Len(t, bodies, 1)
	assert.Equal(t, "one two", dom.InnerText(bodies[0], true, true))
}
