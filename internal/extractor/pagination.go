package extractor

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

type pageLink struct {
	href     string
	linkText string
	score    int
}

// findNextPageLinks scores every anchor in the document against the
// article base URL and returns the hrefs that look like continuation
// pages, best first. Requires a score of at least 50, a relatively high
// confidence bar. The engine reports these links; it never follows them.
func (e *Extractor) findNextPageLinks(doc *html.Node) []string {
	baseURL := e.articleBaseURL()
	if baseURL == "" {
		return nil
	}

	parsedBase, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	hostname := parsedBase.Scheme + "://" + parsedBase.Host
	relURI := e.url
	if idx := strings.LastIndex(e.url, "/"); idx >= 0 {
		relURI = e.url[:idx+1]
	}

	possible := make(map[string]*pageLink)
	var order []string

	for _, link := range dom.GetElementsByTagName(doc, "a") {
		href := dom.GetAttribute(link, "href")
		if href == "" {
			continue
		}
		if idx := strings.Index(href, "#"); idx >= 0 {
			href = href[:idx]
		}
		href = strings.TrimSuffix(href, "/")
		if href == "" {
			continue
		}

		// Resolve to a full URL before comparing against the base.
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			if strings.HasPrefix(href, "/") {
				href = hostname + href
			} else {
				href = relURI + href
			}
		}

		if href == baseURL || href == e.url {
			continue
		}
		if !strings.HasPrefix(href, hostname) {
			continue
		}

		linkText := dom.InnerText(link, true, true)
		if EXTRANEOUS_RE.MatchString(linkText) || len(linkText) > 25 {
			continue
		}

		// A next-page URL differs from the base by something numeric.
		leftover := strings.Replace(href, baseURL, "", 1)
		if !DIGIT_RE.MatchString(leftover) {
			continue
		}

		obj, seen := possible[href]
		if seen {
			obj.linkText += " | " + linkText
		} else {
			obj = &pageLink{href: href, linkText: linkText}
			possible[href] = obj
			order = append(order, href)
		}

		if !strings.Contains(href, baseURL) {
			obj.score -= 25
		}

		linkData := linkText + " " + dom.GetAttribute(link, "class") + " " + dom.GetAttribute(link, "id")
		if NEXT_LINK_RE.MatchString(linkData) {
			obj.score += 50
		}
		if PAGE_RE.MatchString(linkData) {
			obj.score += 25
		}
		if FIRST_LAST_RE.MatchString(linkData) && !NEXT_LINK_RE.MatchString(obj.linkText) {
			// Enough to negate any bonus from a ">" or "»" in the text.
			obj.score -= 65
		}
		if NEGATIVE_SCORE_RE.MatchString(linkData) || EXTRANEOUS_RE.MatchString(linkData) {
			obj.score -= 50
		}
		if PREV_LINK_RE.MatchString(linkData) {
			obj.score -= 200
		}

		// Walk ancestors for pagination and chrome hints.
		positiveMatch, negativeMatch := false, false
		for parent := link.Parent; parent != nil; parent = parent.Parent {
			if parent.Type != html.ElementNode {
				continue
			}
			classAndID := dom.GetAttribute(parent, "class") + " " + dom.GetAttribute(parent, "id")
			if strings.TrimSpace(classAndID) == "" {
				continue
			}
			if !positiveMatch && PAGE_RE.MatchString(classAndID) {
				positiveMatch = true
				obj.score += 25
			}
			if !negativeMatch && NEGATIVE_SCORE_RE.MatchString(classAndID) {
				// "footer" alone is a bad sign; "body-and-footer" is not.
				if !POSITIVE_SCORE_RE.MatchString(classAndID) {
					obj.score -= 25
					negativeMatch = true
				}
			}
		}

		if PAGE_RE.MatchString(href) || EXT_PAGE_RE.MatchString(href) {
			obj.score += 25
		}
		if EXTRANEOUS_RE.MatchString(href) {
			obj.score -= 15
		}

		if n, err := strconv.Atoi(linkText); err == nil {
			if n == 1 {
				obj.score -= 10
			} else if bonus := 10 - n; bonus > 0 {
				obj.score += bonus
			}
		}
	}

	var pages []*pageLink
	for _, href := range order {
		if obj := possible[href]; obj.score >= 50 {
			pages = append(pages, obj)
		}
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].score > pages[j].score })

	var hrefs []string
	for _, page := range pages {
		hrefs = append(hrefs, page.href)
	}
	return hrefs
}

// articleBaseURL strips page-number noise from the document URL's path
// segments to recover the base article URL.
func (e *Extractor) articleBaseURL() string {
	if e.url == "" {
		return ""
	}
	parsed, err := url.Parse(e.url)
	if err != nil {
		return ""
	}

	segments := strings.Split(parsed.Path, "/")
	// Work from the last segment backwards; page noise lives at the end.
	reversed := make([]string, 0, len(segments))
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			reversed = append(reversed, segments[i])
		}
	}

	var cleaned []string
	for idx, segment := range reversed {
		// Split off anything that looks like a file type, unless the
		// "extension" has non-alpha characters in it.
		if dot := strings.LastIndex(segment, "."); dot >= 0 {
			ext := segment[dot+1:]
			if isAlpha(ext) {
				segment = segment[:dot]
			}
		}

		segment = strings.ReplaceAll(segment, ",00", "")

		if idx < 2 {
			segment = SEGMENT_PAGE_RE.ReplaceAllString(segment, "")
		}

		drop := false
		if idx < 2 && isDigits(segment) {
			drop = true
		}
		if idx == 0 && strings.EqualFold(segment, "index") {
			drop = true
		}
		if idx < 2 && len(segment) < 3 && len(reversed) > 0 && !isAlpha(reversed[0]) {
			drop = true
		}

		if !drop {
			cleaned = append(cleaned, segment)
		}
	}

	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		cleaned[i], cleaned[j] = cleaned[j], cleaned[i]
	}

	return parsed.Scheme + "://" + parsed.Host + "/" + strings.Join(cleaned, "/")
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
