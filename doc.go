// Package readability extracts the readable core of an HTML page: the
// article body, its title, and closely related siblings, stripped of
// navigation, advertisements, comment threads, and sidebars.
//
// The heart of the package is a scoring pipeline: the document is
// normalized, paragraph-like elements are scored onto their ancestors,
// the best-scoring subtree is selected, qualifying siblings are promoted
// alongside it, and the assembled container is cleaned. When too little
// content survives, the pipeline relaxes one processing flag at a time
// and re-runs against a fresh parse, up to three retries.
//
// Basic usage:
//
//	client := readability.New(readability.WithURL("https://example.com/post"))
//	result, err := client.Extract(ctx, htmlSource)
//	if err != nil {
//	    // handle empty-input/cancellation errors
//	}
//	fmt.Println(result.Title)
//	fmt.Println(result.Content)
//
// Extraction itself never fails: when no content can be found the result
// carries a fixed apology paragraph and OK is false.
package readability
