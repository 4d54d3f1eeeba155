package extractor

import (
	"math"

	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

// grabArticle runs candidate extraction over a prepared body: strip
// unlikely candidates, normalize divs, score paragraphs, pick the top
// candidate, promote its qualifying siblings, and clean the assembled
// container.
func (e *Extractor) grabArticle(body *html.Node) *html.Node {
	if e.flags.StripUnlikely {
		e.stripUnlikelyCandidates(body)
	}

	e.normalizeDivs(body)

	candidates := e.scoreParagraphs(body)

	top := e.selectTopCandidate(body, candidates)

	content := e.promoteSiblings(body, top)

	e.prepArticle(content)

	return content
}

// stripUnlikelyCandidates detaches every element whose combined class+id
// string matches the unlikely set without also matching the maybe set.
// The body itself is never detached.
func (e *Extractor) stripUnlikelyCandidates(body *html.Node) {
	for _, node := range dom.GetElementsByTagName(body, "*") {
		matchString := dom.ClassAndID(node)
		if matchString == "" {
			continue
		}
		if UNLIKELY_CANDIDATES_RE.MatchString(matchString) &&
			!OK_MAYBE_CANDIDATE_RE.MatchString(matchString) {
			dom.Detach(node)
		}
	}
}

// normalizeDivs reshapes divs so the paragraph scorer sees them: a div
// with no block-level descendants becomes a <p>; otherwise its direct
// text children get wrapped in inline-styled paragraphs so loose text
// still counts.
func (e *Extractor) normalizeDivs(body *html.Node) {
	for _, div := range dom.GetElementsByTagName(body, "div") {
		if len(dom.GetElementsByTagName(div, DIV_TO_P_BLOCK_TAGS...)) == 0 {
			dom.RenameTag(div, "p")
			continue
		}

		for _, child := range dom.ChildNodes(div) {
			if child.Type != html.TextNode {
				continue
			}
			if len(dom.InnerText(child, true, false)) == 0 {
				continue
			}
			p := dom.CreateElement("p")
			dom.SetAttribute(p, "class", STYLED_CLASS)
			dom.SetAttribute(p, "style", "display:inline")
			dom.InsertBefore(div, p, child)
			dom.AppendChild(p, child)
		}
	}
}

// scoreParagraphs walks every paragraph-like element and accumulates its
// score onto the parent (full) and grandparent (half, integer division).
// Returns the candidate set in the order nodes were first initialized,
// which is the tie-break order for top-candidate selection.
func (e *Extractor) scoreParagraphs(body *html.Node) []*html.Node {
	var candidates []*html.Node

	for _, paragraph := range dom.GetElementsByTagName(body, SCORE_TAGS...) {
		innerText := dom.InnerText(paragraph, true, true)
		if len(innerText) < MIN_PARAGRAPH_LENGTH {
			continue
		}

		parent := paragraph.Parent
		if parent == nil {
			continue
		}
		grandParent := parent.Parent

		if !hasContentScore(parent) {
			e.initializeNode(parent)
			candidates = append(candidates, parent)
		}
		if grandParent != nil && grandParent.Type == html.ElementNode && !hasContentScore(grandParent) {
			e.initializeNode(grandParent)
			candidates = append(candidates, grandParent)
		}

		score := paragraphScore(innerText)

		addContentScore(parent, float64(score))
		if grandParent != nil && grandParent.Type == html.ElementNode {
			addContentScore(grandParent, float64(score/2))
		}
	}

	return candidates
}

// selectTopCandidate scales every candidate's score by its link density
// and returns the best one, falling back to a fresh div wrapping the
// whole body when no usable candidate exists. Ties go to the candidate
// initialized first.
func (e *Extractor) selectTopCandidate(body *html.Node, candidates []*html.Node) *html.Node {
	var top *html.Node

	for _, candidate := range candidates {
		scaled := getContentScore(candidate) * (1 - dom.LinkDensity(candidate))
		setContentScore(candidate, scaled)

		if top == nil || scaled > getContentScore(top) {
			top = candidate
		}
	}

	if top == nil || dom.TagName(top) == "body" || dom.TagName(top) == "html" {
		top = dom.CreateElement("div")
		for _, c := range dom.ChildNodes(body) {
			dom.AppendChild(top, c)
		}
		dom.AppendChild(body, top)
		e.initializeNode(top)
	}

	return top
}

// promoteSiblings assembles the output container from the top candidate
// and any siblings that score past the threshold or read like real
// paragraphs.
func (e *Extractor) promoteSiblings(body *html.Node, top *html.Node) *html.Node {
	content := dom.CreateElement("div")
	dom.SetAttribute(content, "id", CONTENT_ID)

	topScore := getContentScore(top)
	threshold := math.Max(10, 0.2*topScore)
	topClass := dom.GetAttribute(top, "class")

	parent := top.Parent
	if parent == nil {
		parent = body
	}

	var promoted []*html.Node
	for _, sibling := range dom.Children(parent) {
		appendNode := sibling == top

		bonus := 0.0
		if topClass != "" && dom.GetAttribute(sibling, "class") == topClass {
			bonus = 0.2 * topScore
		}

		if getContentScore(sibling)+bonus >= threshold {
			appendNode = true
		}

		if dom.TagName(sibling) == "p" {
			linkDensity := dom.LinkDensity(sibling)
			nodeContent := dom.InnerText(sibling, true, true)
			nodeLength := len(nodeContent)

			if nodeLength > 80 && linkDensity < 0.25 {
				appendNode = true
			} else if nodeLength < 80 && linkDensity == 0 && dom.HasSentenceEnd(nodeContent) {
				appendNode = true
			}
		}

		if appendNode {
			promoted = append(promoted, sibling)
		}
	}

	for _, node := range promoted {
		dom.AppendChild(content, node)
	}

	return content
}
