package dom

import "regexp"

// SENTENCE_END_RE is a weak "this reads like a sentence" test: a period
// followed by a space or the end of the text.
var SENTENCE_END_RE = regexp.MustCompile(`\.( |$)`)
