package readability

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithStripUnlikely controls the unlikely-candidate removal pass. It is
// on by default; the retry cascade may still disable it mid-run when too
// little content was captured.
func WithStripUnlikely(enabled bool) Option {
	return func(c *Client) {
		c.flags.StripUnlikely = enabled
	}
}

// WithWeightClasses controls class/id weighting during scoring. On by
// default.
func WithWeightClasses(enabled bool) Option {
	return func(c *Client) {
		c.flags.WeightClasses = enabled
	}
}

// WithCleanConditionally controls the weighted conditional cleanup of
// tables, lists and divs. On by default.
func WithCleanConditionally(enabled bool) Option {
	return func(c *Client) {
		c.flags.CleanConditionally = enabled
	}
}

// WithURL sets the document URL. The core algorithm ignores it; it feeds
// the peripheral decorations: link absolutization, next-page detection,
// and title link scoring.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithContentType sets the output content type: "html" (default),
// "markdown", or "text".
func WithContentType(contentType string) Option {
	return func(c *Client) {
		c.contentType = contentType
	}
}

// WithSanitize runs the extracted HTML through a conservative sanitizer
// policy before it is returned. Off by default.
func WithSanitize(enabled bool) Option {
	return func(c *Client) {
		c.sanitize = enabled
	}
}
