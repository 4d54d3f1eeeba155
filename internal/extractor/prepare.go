package extractor

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

// prepareDocument normalizes a freshly parsed tree before extraction:
// structural repair, script/style removal, font demotion, and textarea
// escaping. Runs once per pass, on every retry's fresh parse.
func (e *Extractor) prepareDocument(doc *html.Node) {
	ensureStructure(doc)
	mergeBodies(doc)

	for _, script := range dom.GetElementsByTagName(doc, "script") {
		dom.Detach(script)
	}
	for _, style := range dom.GetElementsByTagName(doc, "style") {
		dom.Detach(style)
	}
	for _, link := range dom.GetElementsByTagName(doc, "link") {
		if strings.EqualFold(dom.GetAttribute(link, "rel"), "stylesheet") {
			dom.Detach(link)
		}
	}

	for _, font := range dom.GetElementsByTagName(doc, "font") {
		dom.RenameTag(font, "span")
	}

	// Escape angle brackets in textarea payloads so the serialized output
	// cannot reopen markup.
	for _, ta := range dom.GetElementsByTagName(doc, "textarea") {
		for c := ta.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				c.Data = strings.ReplaceAll(c.Data, "<", "&lt;")
				c.Data = strings.ReplaceAll(c.Data, ">", "&gt;")
			}
		}
	}
}

// ensureStructure guarantees html, head and body elements exist. The
// lenient parser synthesizes these for any input; this covers trees built
// programmatically.
func ensureStructure(doc *html.Node) {
	htmlNodes := dom.GetElementsByTagName(doc, "html")
	var root *html.Node
	if len(htmlNodes) == 0 {
		root = dom.CreateElement("html")
		for _, c := range dom.ChildNodes(doc) {
			dom.AppendChild(root, c)
		}
		dom.AppendChild(doc, root)
	} else {
		root = htmlNodes[0]
	}

	if len(dom.GetElementsByTagName(root, "head")) == 0 {
		head := dom.CreateElement("head")
		dom.InsertBefore(root, head, root.FirstChild)
	}
	if len(dom.GetElementsByTagName(root, "body")) == 0 {
		dom.AppendChild(root, dom.CreateElement("body"))
	}
}

// mergeBodies concatenates the children of any extra <body> elements into
// the first one and detaches the extras.
func mergeBodies(doc *html.Node) {
	bodies := dom.GetElementsByTagName(doc, "body")
	if len(bodies) < 2 {
		return
	}
	first := bodies[0]
	for _, extra := range bodies[1:] {
		for _, c := range dom.ChildNodes(extra) {
			dom.AppendChild(first, c)
		}
		dom.Detach(extra)
	}
}
