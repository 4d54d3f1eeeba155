package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BumpyClock/readability-go/internal/dom"
)

func TestDetach(t *testing.T) {
	doc := parse(t, `<html><body><div><p>gone</p></div></body></html>`)
	p := findFirst(t, doc, "p")
	div := findFirst(t, doc, "div")

	dom.Detach(p)

	assert.Nil(t, p.Parent)
	assert.Empty(t, dom.Children(div))

	// Detaching twice is a no-op.
	dom.Detach(p)
	assert.Nil(t, p.Parent)
}

func TestAppendChild_MovesAttachedNode(t *testing.T) {
	doc := parse(t, `<html><body><div id="a"><p>moved</p></div><div id="b"></div></body></html>`)
	p := findFirst(t, doc, "p")
	divs := dom.GetElementsByTagName(doc, "div")
	require.Len(t, divs, 2)

	dom.AppendChild(divs[1], p)

	assert.Same(t, divs[1], p.Parent)
	assert.Empty(t, dom.Children(divs[0]))
	assert.Len(t, dom.Children(divs[1]), 1)
}

func TestReplaceNode(t *testing.T) {
	doc := parse(t, `<html><body><div><span>old</span></div></body></html>`)
	span := findFirst(t, doc, "span")
	div := findFirst(t, doc, "div")

	replacement := dom.CreateElement("em")
	dom.ReplaceNode(span, replacement)

	children := dom.Children(div)
	require.Len(t, children, 1)
	assert.Equal(t, "em", dom.TagName(children[0]))
	assert.Nil(t, span.Parent)
}

func TestRenameTag_KeepsAttributesAndChildren(t *testing.T) {
	doc := parse(t, `<html><body><font color="red">text <b>inner</b></font></body></html>`)
	font := findFirst(t, doc, "font")

	dom.RenameTag(font, "span")

	assert.Equal(t, "span", dom.TagName(font))
	assert.Equal(t, "red", dom.GetAttribute(font, "color"))
	assert.Equal(t, "text inner", dom.InnerText(font, true, true))
}

func TestGetElementsByTagName_DocumentOrder(t *testing.T) {
	doc := parse(t, `<html><body><p id="1"></p><div><p id="2"></p></div><p id="3"></p></body></html>`)

	ps := dom.GetElementsByTagName(findFirst(t, doc, "body"), "p")
	require.Len(t, ps, 3)
	assert.Equal(t, "1", dom.GetAttribute(ps[0], "id"))
	assert.Equal(t, "2", dom.GetAttribute(ps[1], "id"))
	assert.Equal(t, "3", dom.GetAttribute(ps[2], "id"))
}

func TestGetElementsByTagName_MultipleTags(t *testing.T) {
	doc := parse(t, `<html><body><p>a</p><td>b</td><pre>c</pre><span>d</span></body></html>`)

	nodes := dom.GetElementsByTagName(findFirst(t, doc, "body"), "p", "pre")
	assert.Len(t, nodes, 2)
}

func TestAttributes(t *testing.T) {
	doc := parse(t, `<html><body><div id="x" class="y"></div></body></html>`)
	div := findFirst(t, doc, "div")

	assert.Equal(t, "x", dom.GetAttribute(div, "id"))
	assert.True(t, dom.HasAttribute(div, "class"))
	assert.False(t, dom.HasAttribute(div, "style"))

	dom.SetAttribute(div, "style", "display:none")
	assert.Equal(t, "display:none", dom.GetAttribute(div, "style"))

	dom.SetAttribute(div, "style", "display:inline")
	assert.Equal(t, "display:inline", dom.GetAttribute(div, "style"))

	dom.RemoveAttribute(div, "style")
	assert.False(t, dom.HasAttribute(div, "style"))

	assert.Equal(t, "yx", dom.ClassAndID(div))
}

func TestSiblingIntegrityAfterMutation(t *testing.T) {
	doc := parse(t, `<html><body><div><p id="1"></p><p id="2"></p><p id="3"></p></div></body></html>`)
	div := findFirst(t, doc, "div")
	ps := dom.GetElementsByTagName(div, "p")
	require.Len(t, ps, 3)

	dom.Detach(ps[1])

	children := dom.Children(div)
	require.Len(t, children, 2)
	assert.Equal(t, "1", dom.GetAttribute(children[0], "id"))
	assert.Equal(t, "3", dom.GetAttribute(children[1], "id"))
	assert.Same(t, children[1], children[0].NextSibling)
}
