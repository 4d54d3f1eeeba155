package extractor

import "regexp"

// The class/id vocabulary steering removal and weighting. All of these are
// case-insensitive substring matchers, precompiled once and shared across
// calls.

// Matches class/id strings that mark a node as an unlikely content
// candidate: navigation, comment threads, sidebars, social chrome.
var UNLIKELY_CANDIDATES_RE = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|meta|nav|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter`)

// The inverse guard: a node matching the blacklist survives when it also
// matches one of these. Something like "comments-main" hits "comment"
// but also "main", so it stays.
var OK_MAYBE_CANDIDATE_RE = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)

// Class/id hints that this node holds article content.
var POSITIVE_SCORE_RE = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)

// Class/id hints that this node is chrome, not content.
var NEGATIVE_SCORE_RE = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|link|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`)

// Embeds whose source matches a known video host are kept through both
// cleaning passes.
var VIDEO_RE = regexp.MustCompile(`(?i)(youtube|vimeo|blip|slideshare)\.(com|tv|net)`)

// Runs of two or more <br> tags (with optional whitespace between) are
// collapsed into a paragraph break in the source text before parsing.
var REPLACE_BRS_RE = regexp.MustCompile(`(?i)(<br[^>]*>[ \n\r\t]*){2,}`)

// Link text/attributes that mean a link is not a next-page link.
var EXTRANEOUS_RE = regexp.MustCompile(`(?i)print|archive|comment|discuss|e[-]?mail|share|reply|all|login|sign|single`)

// Link text that looks like "next": next, continue, >, >>, » — but not >|
// or »|, which usually mean last page.
var NEXT_LINK_RE = regexp.MustCompile(`(?i)(next|weiter|continue|>([^|]|$)|»([^|]|$))`)

// Link text that looks like "previous".
var PREV_LINK_RE = regexp.MustCompile(`(?i)(prev|earl|old|new|<|«)`)

// Anything that looks like page, paging, or pagination.
var PAGE_RE = regexp.MustCompile(`(?i)pag(e|ing|inat)`)

// URL tails like /page/2, ?p=3, ?pagination=34.
var EXT_PAGE_RE = regexp.MustCompile(`(?i)p(a|g|ag)?(e|ing|ination)?(=|/)[0-9]{1,2}`)

// First/last markers in link text.
var FIRST_LAST_RE = regexp.MustCompile(`(?i)(first|last)`)

// Word separators in titles, including non-breaking-space entities that
// survive in raw attribute/text content.
var WORD_SPLIT_RE = regexp.MustCompile(`(\s|&nbsp;|&#160;|&#xA0)+`)

// Trailing page-number segments in URL paths: -p2, _page3, -4.
var SEGMENT_PAGE_RE = regexp.MustCompile(`(?i)((_|-)?p[a-z]*|(_|-))[0-9]{1,2}$`)

var DIGIT_RE = regexp.MustCompile(`[0-9]`)

// Tags whose presence as a descendant stops a <div> from being demoted to
// a paragraph.
var DIV_TO_P_BLOCK_TAGS = []string{"a", "blockquote", "dl", "div", "img", "ol", "p", "pre", "table", "ul"}

// Paragraph-like tags that feed the candidate scoring pass.
var SCORE_TAGS = []string{"p", "td", "pre"}

// The class marking wrapper paragraphs the cleaner must leave styled.
const STYLED_CLASS = "readability-styled"

// Attribute carrying the per-node content score. Presence of the
// attribute distinguishes an unscored node from one scored zero.
const SCORE_ATTR = "data-readability-score"

// The id of the assembled output container.
const CONTENT_ID = "readability-content"

// Shortest output, in inner-text characters, accepted without relaxing a
// flag and retrying.
const RETRY_LENGTH_THRESHOLD = 250

// Paragraphs shorter than this never contribute to scoring.
const MIN_PARAGRAPH_LENGTH = 25

// FallbackMessage is the paragraph emitted when no content could be
// extracted after the full retry cascade.
const FallbackMessage = `Sorry, readability was unable to parse this page for content. If you feel like it should have been able to, please <a href='http://code.google.com/p/arc90labs-readability/issues/entry'>let us know by submitting an issue.</a>`
