// Package trafilatura provides generic main-content extraction for pages
// that are not served by a recognized forum platform.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/govlens"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ govlens.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// The title comes from page metadata; boilerplate (nav, footer,
// sidebars) is removed from the content.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns EEXTRACT if no main content can be identified.
func (e *Extractor) Extract(rawHTML string) (*govlens.ExtractResult, error) {
	if rawHTML == "" {
		return nil, govlens.Errorf(govlens.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "extracting content: %v", err)
	}

	if result.ContentNode == nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "no content found in page")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "rendering content: %v", err)
	}

	return &govlens.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
