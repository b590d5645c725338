// Package readability provides a last-resort content extractor used when
// neither a platform extractor nor trafilatura finds usable content.
package readability

import (
	"strings"

	"github.com/fwojciec/govlens"
	"github.com/go-shiori/go-readability"
)

var _ govlens.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns EEXTRACT if the page yields no readable content.
func (e *Extractor) Extract(rawHTML string) (*govlens.ExtractResult, error) {
	if rawHTML == "" {
		return nil, govlens.Errorf(govlens.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "extracting content: %v", err)
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, govlens.Errorf(govlens.EEXTRACT, "no readable content in page")
	}

	return &govlens.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
