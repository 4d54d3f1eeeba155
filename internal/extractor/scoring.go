package extractor

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

// setContentScore annotates a node with its score. The attribute doubles
// as the "has been initialized" marker, so it is written even for zero.
func setContentScore(node *html.Node, score float64) {
	dom.SetAttribute(node, SCORE_ATTR, strconv.FormatFloat(score, 'f', 4, 64))
}

// hasContentScore reports whether the node was initialized during this
// pass. Unscored and scored-zero are different states: only the former
// triggers initialization.
func hasContentScore(node *html.Node) bool {
	return dom.HasAttribute(node, SCORE_ATTR)
}

// getContentScore returns the node's score, or 0 for unscored nodes.
func getContentScore(node *html.Node) float64 {
	raw := dom.GetAttribute(node, SCORE_ATTR)
	if raw == "" {
		return 0
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return score
}

// addContentScore adds delta to an already-initialized node.
func addContentScore(node *html.Node, delta float64) {
	setContentScore(node, getContentScore(node)+delta)
}

// initializeNode gives a node its base score: a tag-dependent prior plus
// the class weight.
func (e *Extractor) initializeNode(node *html.Node) {
	score := 0.0

	switch dom.TagName(node) {
	case "div":
		score += 5
	case "pre", "td", "blockquote":
		score += 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		score -= 3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		score -= 5
	}

	score += float64(e.classWeight(node))
	setContentScore(node, score)
}

// classWeight scores a node by its class and id attributes: ±25 per
// positive/negative match on each, stacking to at most ±50. Disabled
// entirely when the weight-classes flag is off.
func (e *Extractor) classWeight(node *html.Node) int {
	if !e.flags.WeightClasses {
		return 0
	}

	weight := 0

	if class := dom.GetAttribute(node, "class"); class != "" {
		if NEGATIVE_SCORE_RE.MatchString(class) {
			weight -= 25
		}
		if POSITIVE_SCORE_RE.MatchString(class) {
			weight += 25
		}
	}

	if id := dom.GetAttribute(node, "id"); id != "" {
		if NEGATIVE_SCORE_RE.MatchString(id) {
			weight -= 25
		}
		if POSITIVE_SCORE_RE.MatchString(id) {
			weight += 25
		}
	}

	return weight
}

// paragraphScore computes the contribution of one scored paragraph: a
// base point, a point per comma-delimited piece, and a point per 100
// characters capped at 3. Integer division throughout; switching to
// floating point would drift scores near the boundaries.
func paragraphScore(innerText string) int {
	score := 1
	score += len(strings.Split(innerText, ","))
	score += minInt(len(innerText)/100, 3)
	return score
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
