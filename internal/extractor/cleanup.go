package extractor

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

// prepArticle cleans the assembled output container for presentation:
// style stripping, unconditional tag removal, the weighted conditional
// pass, and empty-paragraph pruning.
func (e *Extractor) prepArticle(content *html.Node) {
	e.cleanStyles(content)

	e.clean(content, "form")
	e.clean(content, "object")
	e.clean(content, "h1")
	e.clean(content, "iframe")
	e.clean(content, "hr")

	// A lone h2 is almost always the page reusing the title as a header
	// rather than a real subheading.
	if subtitles := dom.GetElementsByTagName(content, "h2"); len(subtitles) == 1 {
		dom.Detach(subtitles[0])
	}

	for _, p := range dom.GetElementsByTagName(content, "p") {
		imgCount := len(dom.GetElementsByTagName(p, "img"))
		embedCount := len(dom.GetElementsByTagName(p, "embed", "object"))
		if imgCount == 0 && embedCount == 0 && len(dom.InnerText(p, true, true)) == 0 {
			dom.Detach(p)
		}
	}

	if e.flags.CleanConditionally {
		e.cleanConditionally(content, "table")
		e.cleanConditionally(content, "ul")
		e.cleanConditionally(content, "div")
	}

	stripScores(content)
}

// cleanStyles removes style attributes from every descendant of node,
// sparing only the inline wrappers the div normalizer created. The node
// itself is left as it is.
func (e *Extractor) cleanStyles(node *html.Node) {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if dom.GetAttribute(c, "class") != STYLED_CLASS {
			dom.RemoveAttribute(c, "style")
		}
		e.cleanStyles(c)
	}
}

// clean detaches every descendant with the given tag. Objects and embeds
// whose serialized form matches a known video host are kept.
func (e *Extractor) clean(content *html.Node, tag string) {
	isEmbed := tag == "object" || tag == "embed"

	for _, node := range dom.GetElementsByTagName(content, tag) {
		if isEmbed && isVideoEmbed(node) {
			continue
		}
		dom.Detach(node)
	}
}

// isVideoEmbed checks an embed's attributes and serialized body for a
// video-host URL.
func isVideoEmbed(node *html.Node) bool {
	for _, attr := range node.Attr {
		if VIDEO_RE.MatchString(attr.Val) {
			return true
		}
	}

	var sb strings.Builder
	if err := html.Render(&sb, node); err != nil {
		return false
	}
	return VIDEO_RE.MatchString(sb.String())
}

// cleanConditionally weighs container nodes of the given tag and removes
// the ones that look like chrome: negative class weight, or few commas
// combined with any of the ominous-sign rules.
func (e *Extractor) cleanConditionally(content *html.Node, tag string) {
	for _, node := range dom.GetElementsByTagName(content, tag) {
		weight := e.classWeight(node)

		if weight < 0 {
			dom.Detach(node)
			continue
		}

		if dom.CharCount(node, ",") >= 10 {
			continue
		}

		p := len(dom.GetElementsByTagName(node, "p"))
		img := len(dom.GetElementsByTagName(node, "img"))
		// Real lists get a strongly negative count, which keeps the
		// list-heavy rule from firing on actual ul/ol content.
		li := len(dom.GetElementsByTagName(node, "li")) - 100
		input := len(dom.GetElementsByTagName(node, "input"))

		embedCount := 0
		for _, embed := range dom.GetElementsByTagName(node, "embed", "object") {
			if !isVideoEmbed(embed) {
				embedCount++
			}
		}

		linkDensity := dom.LinkDensity(node)
		contentLength := len(dom.InnerText(node, true, true))

		remove := false
		switch {
		case img > p:
			remove = true
		case li > p && tag != "ul" && tag != "ol":
			remove = true
		case input > p/3:
			remove = true
		case contentLength < 25 && (img == 0 || img > 2):
			remove = true
		case weight < 25 && linkDensity > 0.2:
			remove = true
		case weight >= 25 && linkDensity > 0.5:
			remove = true
		case (embedCount == 1 && contentLength < 75) || embedCount > 1:
			remove = true
		}

		if remove {
			dom.Detach(node)
		}
	}
}

// stripScores drops the internal score annotations from the output tree.
func stripScores(content *html.Node) {
	dom.RemoveAttribute(content, SCORE_ATTR)
	for _, node := range dom.GetElementsByTagName(content, "*") {
		dom.RemoveAttribute(node, SCORE_ATTR)
	}
}
