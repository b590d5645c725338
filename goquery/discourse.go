package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/govlens"
)

var _ govlens.Extractor = (*DiscourseExtractor)(nil)

// DiscourseExtractor extracts proposal content from Discourse topic pages,
// such as those on gov.near.org. It reads the first post only; replies are
// not part of the proposal.
type DiscourseExtractor struct{}

// NewDiscourseExtractor creates a new DiscourseExtractor.
func NewDiscourseExtractor() *DiscourseExtractor {
	return &DiscourseExtractor{}
}

// Extract returns the topic title and the first post's HTML.
// Returns EEXTRACT if the page has no post content.
func (e *DiscourseExtractor) Extract(html string) (*govlens.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "failed to parse HTML: %v", err)
	}

	post := doc.Find("div.post").First()
	if post.Length() == 0 {
		return nil, govlens.Errorf(govlens.EEXTRACT, "could not find post content")
	}

	contentHTML, err := post.Html()
	if err != nil {
		return nil, govlens.Errorf(govlens.EEXTRACT, "failed to render post content: %v", err)
	}

	return &govlens.ExtractResult{
		Title:       e.title(doc),
		ContentHTML: contentHTML,
	}, nil
}

// title returns the topic title. The crawler view nests it in a link
// inside #topic-title; some themes expose a bare h1 instead. Falls back
// to the document title, and returns "" when nothing is found.
func (e *DiscourseExtractor) title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("#topic-title h1 a").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
