package extractor

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// selectTitle picks the article title: the <title> text when present,
// else a single <h1>, refined by scoring every h1/h2 against the
// candidate's words. Cosmetic only; extraction does not depend on it.
func (e *Extractor) selectTitle(doc *html.Node) string {
	candidate := ""
	if titles := dom.GetElementsByTagName(doc, "title"); len(titles) > 0 {
		candidate = dom.InnerText(titles[0], true, true)
	} else if h1s := dom.GetElementsByTagName(doc, "h1"); len(h1s) == 1 {
		candidate = dom.InnerText(h1s[0], true, true)
	}

	if candidate == "" {
		return ""
	}

	normalizedCandidate := normalizeTitleWords(candidate)
	titleWords := make(map[string]bool)
	for _, word := range strings.Fields(normalizedCandidate) {
		word = strings.ToLower(strings.Trim(word, punctuation))
		if len(word) > 3 {
			titleWords[word] = true
		}
	}

	bestScore := 0.0
	best := ""

	for _, heading := range dom.GetElementsByTagName(doc, "h1", "h2") {
		innerText := dom.InnerText(heading, true, true)
		if innerText == "" {
			continue
		}

		score := 0.0

		common := 0
		for _, word := range strings.Fields(normalizeTitleWords(innerText)) {
			word = strings.ToLower(strings.Trim(word, punctuation))
			if titleWords[word] {
				common++
			}
		}
		if len(titleWords) > 0 {
			score += -5 + 10*float64(common)/float64(len(titleWords))
		}

		links := dom.GetElementsByTagName(heading, "a")
		if len(links) > 1 {
			continue
		}
		if len(links) == 1 {
			link := links[0]
			if innerText != dom.InnerText(link, true, true) {
				continue
			}
			href := dom.GetAttribute(link, "href")
			if href != "" && e.url != "" {
				switch {
				case href == "/":
					score -= 25
				case strings.HasPrefix(e.url, href) && len(href) < len(e.url):
					score -= 25
				case strings.Contains(e.url, href):
					score += 25
				}
			}
		}

		if id := dom.GetAttribute(heading, "id"); strings.Contains(id, "title") {
			score += float64(10 * len("title") / len(id))
		}
		if class := dom.GetAttribute(heading, "class"); strings.Contains(class, "title") {
			for _, bit := range strings.Fields(class) {
				if strings.Contains(bit, "title") {
					score += float64(5 * len("title") / len(bit))
				}
			}
		}

		if score > bestScore {
			bestScore = score
			best = innerText
		}
	}

	if best != "" && headingMatchesTitle(best, normalizedCandidate) {
		candidate = best
	}

	return strings.TrimSpace(candidate)
}

// headingMatchesTitle accepts a heading whose normalized words appear
// verbatim inside the page title, or one that is a near-exact match of
// the whole title (small edit distance relative to length).
func headingMatchesTitle(heading, normalizedTitle string) bool {
	normalizedHeading := normalizeTitleWords(heading)
	if strings.Contains(normalizedTitle, normalizedHeading) {
		return true
	}

	longer := len(normalizedTitle)
	if len(normalizedHeading) > longer {
		longer = len(normalizedHeading)
	}
	if longer == 0 {
		return false
	}
	distance := levenshtein.ComputeDistance(normalizedHeading, normalizedTitle)
	return float64(distance)/float64(longer) < 0.1
}

// normalizeTitleWords unescapes entities and collapses every word
// separator (including non-breaking-space entities) to single spaces.
func normalizeTitleWords(s string) string {
	return strings.TrimSpace(WORD_SPLIT_RE.ReplaceAllString(html.UnescapeString(s), " "))
}
