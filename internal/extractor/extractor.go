// Package extractor implements the content extraction pipeline: document
// preparation, paragraph scoring, top-candidate selection with sibling
// promotion, the cleanup passes, and the flag-relaxing retry cascade that
// re-runs extraction when too little content was captured.
package extractor

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/BumpyClock/readability-go/internal/dom"
)

// Flags are the three processing switches of the pipeline. All start true
// and are disabled one at a time, in field order, by the retry cascade.
type Flags struct {
	StripUnlikely      bool
	WeightClasses      bool
	CleanConditionally bool
}

// DefaultFlags returns the flag set extraction starts with.
func DefaultFlags() Flags {
	return Flags{StripUnlikely: true, WeightClasses: true, CleanConditionally: true}
}

// Document is the outcome of one extraction run.
type Document struct {
	// Title is the selected article title, possibly empty.
	Title string

	// Content is the output container: a <div id="readability-content">
	// holding the top candidate and promoted siblings, or the fallback
	// paragraph when extraction failed.
	Content *html.Node

	// OK is false iff the fallback paragraph was emitted.
	OK bool

	// NextPageURLs holds detected continuation links, best first. Empty
	// unless a document URL was supplied.
	NextPageURLs []string
}

// Extractor runs the pipeline over one source document. It owns its
// working tree exclusively and mutates it destructively; retries re-parse
// from the retained source string.
type Extractor struct {
	source string // br-collapsed source, kept pristine for retries
	url    string
	flags  Flags
}

// New prepares an extractor for the given raw HTML. The one pre-parse
// textual transformation happens here: runs of two or more <br> tags
// become paragraph breaks, which materially changes the parsed structure.
func New(rawHTML, url string, flags Flags) *Extractor {
	return &Extractor{
		source: REPLACE_BRS_RE.ReplaceAllString(rawHTML, "</p><p>"),
		url:    url,
		flags:  flags,
	}
}

// Run executes the pipeline. Extraction itself never fails: when no
// content survives the full retry cascade the fallback paragraph is
// emitted and OK is false. Run returns an error only when the context is
// done or the source cannot be parsed.
// The context is checked between passes only; extraction is pure CPU work
// with no suspension points inside a pass.
func (e *Extractor) Run(ctx context.Context) (*Document, error) {
	result := &Document{}

	var content *html.Node

	// Initial pass plus at most three flag-relaxing retries.
	for attempt := 0; attempt < 4; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := html.Parse(strings.NewReader(e.source))
		if err != nil {
			// x/net/html recovers from malformed markup; a hard parse
			// error means the source is unusable.
			return nil, err
		}
		e.prepareDocument(doc)

		// Title and continuation links come from the pristine first
		// parse, before extraction mutates anything.
		if attempt == 0 {
			result.Title = e.selectTitle(doc)
			if e.url != "" {
				result.NextPageURLs = e.findNextPageLinks(doc)
			}
		}

		body := findBody(doc)
		if body == nil {
			break
		}

		content = e.grabArticle(body)

		if len(dom.InnerText(content, true, true)) >= RETRY_LENGTH_THRESHOLD {
			break
		}

		// Too little content: relax one flag and re-run against a fresh
		// parse. When nothing is left to relax, keep what we have.
		if e.flags.StripUnlikely {
			e.flags.StripUnlikely = false
		} else if e.flags.WeightClasses {
			e.flags.WeightClasses = false
		} else if e.flags.CleanConditionally {
			e.flags.CleanConditionally = false
		} else {
			break
		}
	}

	if content == nil || len(dom.InnerText(content, true, true)) == 0 {
		result.Content = fallbackParagraph()
		result.OK = false
		return result, nil
	}

	if e.url != "" {
		dom.MakeLinksAbsolute(content, e.url)
	}

	result.Content = content
	result.OK = true
	return result, nil
}

// fallbackParagraph builds the fixed apology paragraph emitted when
// extraction comes up empty.
func fallbackParagraph() *html.Node {
	p := dom.CreateElement("p")
	frag, err := html.ParseFragment(strings.NewReader(FallbackMessage), p)
	if err != nil {
		dom.AppendChild(p, dom.CreateTextNode(FallbackMessage))
		return p
	}
	for _, n := range frag {
		dom.AppendChild(p, n)
	}
	return p
}

// findBody returns the document's body element, or nil.
func findBody(doc *html.Node) *html.Node {
	nodes := dom.GetElementsByTagName(doc, "body")
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
