package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BumpyClock/readability-go/internal/dom"
)

func TestLinkDensity_NoLinks(t *testing.T) {
	doc := parse(t, `<html><body><div><p>plain text with no links at all</p></div></body></html>`)
	div := findFirst(t, doc, "div")

	assert.Equal(t, 0.0, dom.LinkDensity(div))
}

func TestLinkDensity_AllLinks(t *testing.T) {
	doc := parse(t, `<html><body><div><a href="/x">entirely links</a></div></body></html>`)
	div := findFirst(t, doc, "div")

	assert.Equal(t, 1.0, dom.LinkDensity(div))
}

func TestLinkDensity_EmptyNodeIsOne(t *testing.T) {
	doc := parse(t, `<html><body><div></div></body></html>`)
	div := findFirst(t, doc, "div")

	assert.Equal(t, 1.0, dom.LinkDensity(div))
}

func TestLinkDensity_Partial(t *testing.T) {
	// 10 chars of link text inside 21 chars of total text.
	doc := parse(t, `<html><body><div>aaaaa bbbb <a href="/x">cccc, dddd</a></div></body></html>`)
	div := findFirst(t, doc, "div")

	density := dom.LinkDensity(div)
	assert.Greater(t, density, 0.0)
	assert.Less(t, density, 1.0)
}

func TestLinkDensity_InRange(t *testing.T) {
	for _, src := range []string{
		`<html><body><div>text</div></body></html>`,
		`<html><body><div><a href="/">a</a>b</div></body></html>`,
		`<html><body><div><a href="/"></a></div></body></html>`,
	} {
		doc := parse(t, src)
		div := findFirst(t, doc, "div")
		density := dom.LinkDensity(div)
		assert.GreaterOrEqual(t, density, 0.0, src)
		assert.LessOrEqual(t, density, 1.0, src)
	}
}

func TestMakeLinksAbsolute(t *testing.T) {
	doc := parse(t, `<html><body>
		<a href="relative/page">rel</a>
		<a href="/rooted">root</a>
		<a href="#anchor">frag</a>
		<a href="https://other.example/abs">abs</a>
		<img src="pic.png">
	</body></html>`)
	body := findFirst(t, doc, "body")

	dom.MakeLinksAbsolute(body, "https://example.com/articles/post.html")

	links := dom.GetElementsByTagName(body, "a")
	assert.Equal(t, "https://example.com/articles/relative/page", dom.GetAttribute(links[0], "href"))
	assert.Equal(t, "https://example.com/rooted", dom.GetAttribute(links[1], "href"))
	assert.Equal(t, "#anchor", dom.GetAttribute(links[2], "href"))
	assert.Equal(t, "https://other.example/abs", dom.GetAttribute(links[3], "href"))

	img := findFirst(t, body, "img")
	assert.Equal(t, "https://example.com/articles/pic.png", dom.GetAttribute(img, "src"))
}

func TestHasSentenceEnd(t *testing.T) {
	assert.True(t, dom.HasSentenceEnd("This is a sentence."))
	assert.True(t, dom.HasSentenceEnd("First. Second part"))
	assert.False(t, dom.HasSentenceEnd("no terminator here"))
	assert.False(t, dom.HasSentenceEnd("dotted.word"))
}
