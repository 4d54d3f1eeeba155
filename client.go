package readability

import (
	"context"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"

	"github.com/BumpyClock/readability-go/internal/dom"
	"github.com/BumpyClock/readability-go/internal/extractor"
	"github.com/BumpyClock/readability-go/internal/resource"
)

// Client extracts readable content from HTML documents. A Client is
// immutable after construction and safe for concurrent use; every
// extraction owns its own working tree.
type Client struct {
	flags       extractor.Flags
	url         string
	contentType string
	sanitize    bool
}

// New creates a Client with the provided options.
//
// Example:
//
//	client := readability.New(
//	    readability.WithURL("https://example.com/article"),
//	    readability.WithContentType("markdown"),
//	)
func New(opts ...Option) *Client {
	c := &Client{
		flags:       extractor.DefaultFlags(),
		contentType: "html",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extract runs the extraction pipeline over an HTML source string. It
// returns an error for empty input or context cancellation; an input the
// pipeline cannot find content in still produces a Result, with OK false
// and the fallback paragraph as content.
func (c *Client) Extract(ctx context.Context, html string) (*Result, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &ParseError{Code: ErrEmptyHTML, Op: "Extract"}
	}

	ex := extractor.New(html, c.url, c.flags)
	docResult, err := ex.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &ParseError{Code: ErrContext, Op: "Extract", Err: err}
		}
		return nil, &ParseError{Code: ErrExtract, Op: "Extract", Err: err}
	}

	content, err := resource.Serialize(docResult.Content)
	if err != nil {
		return nil, &ParseError{Code: ErrExtract, Op: "Extract", Err: err}
	}

	if c.sanitize {
		content = sanitizePolicy.Sanitize(content)
	}

	length := 0
	if docResult.OK {
		length = len(dom.InnerText(docResult.Content, true, true))
	}

	converted, err := c.convertContent(content, docResult)
	if err != nil {
		return nil, &ParseError{Code: ErrExtract, Op: "Extract", Err: err}
	}

	return &Result{
		Title:        docResult.Title,
		Content:      converted,
		OK:           docResult.OK,
		Length:       length,
		NextPageURLs: docResult.NextPageURLs,
	}, nil
}

// ExtractBytes decodes raw bytes to UTF-8 text first, then extracts.
// Returns ErrInvalidInput when the source cannot be decoded.
func (c *Client) ExtractBytes(ctx context.Context, src []byte) (*Result, error) {
	text, err := resource.DecodeText(src)
	if err != nil {
		return nil, &ParseError{Code: ErrInvalidInput, Op: "ExtractBytes", Err: err}
	}
	return c.Extract(ctx, text)
}

// convertContent renders the serialized HTML into the configured content
// type.
func (c *Client) convertContent(content string, docResult *extractor.Document) (string, error) {
	switch c.contentType {
	case "", "html":
		return content, nil
	case "text":
		return dom.InnerText(docResult.Content, true, true), nil
	case "markdown":
		converter := md.NewConverter("", true, nil)
		return converter.ConvertString(content)
	default:
		return content, nil
	}
}

// sanitizePolicy is a user-generated-content policy extended with the
// class and id attributes the output container relies on.
var sanitizePolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "id").Globally()
	return p
}()
