// Package analyze provides proposal review orchestration.
// It coordinates fetching, extraction, markdown conversion, rubric
// scoring, and ecosystem research into a single review pass.
package analyze

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/govlens"
)

// Ensure Pipeline implements govlens.ReviewService.
var _ govlens.ReviewService = (*Pipeline)(nil)

// Pipeline runs the full review of a proposal URL. Steps execute
// strictly in order and the first failure stops the run, so a page that
// cannot be fetched or parsed never reaches the model APIs.
type Pipeline struct {
	Fetcher    govlens.Fetcher
	Extractors govlens.ExtractorRegistry
	Converter  govlens.Converter
	Analyzer   govlens.Analyzer
	Researcher govlens.Researcher

	// Now returns the review timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Review fetches the page at url, extracts the proposal, scores it
// against the rubric, and gathers ecosystem context.
func (p *Pipeline) Review(ctx context.Context, url string) (*govlens.Review, error) {
	if url == "" {
		return nil, govlens.Errorf(govlens.EINVALID, "proposal URL required")
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extractor := p.Extractors.GetForHTML(html)
	if extractor == nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "no extractor available for %s", url)
	}

	extracted, err := extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	// An extractor can succeed on a page whose post body is blank; that
	// is still an extraction failure, not invalid converter input.
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return nil, govlens.Errorf(govlens.EEXTRACT, "no content extracted from %s", url)
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	proposal := &govlens.Proposal{
		URL:   url,
		Title: extracted.Title,
		Body:  markdown,
	}
	if proposal.Body == "" {
		return nil, govlens.Errorf(govlens.EEXTRACT, "no content extracted from %s", url)
	}

	analysis, err := p.Analyzer.Analyze(ctx, proposal)
	if err != nil {
		return nil, err
	}

	ecosystem, err := p.Researcher.Research(ctx, proposal)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	return &govlens.Review{
		Proposal:    proposal,
		Analysis:    analysis,
		Ecosystem:   ecosystem,
		ContentHash: govlens.ContentHash(proposal.Body),
		CreatedAt:   now(),
	}, nil
}
