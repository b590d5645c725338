// Package goquery provides platform detection and content extraction for
// forum pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/govlens"
)

var _ govlens.PlatformDetector = (*Detector)(nil)

// Detector identifies forum platforms from HTML content.
// It checks meta tags and structural markers unique to each platform.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) govlens.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return govlens.PlatformUnknown
	}

	// Check the meta generator tag first - most reliable when present
	if platform := d.detectFromMetaGenerator(doc); platform != govlens.PlatformUnknown {
		return platform
	}

	// Check for Discourse structural markers.
	// #main-outlet wraps every Discourse page; #topic-title and
	// .topic-body appear on the crawler view of topic pages.
	if d.hasSelector(doc, "#main-outlet") ||
		d.hasSelector(doc, "#topic-title") ||
		d.hasSelector(doc, ".topic-body") {
		return govlens.PlatformDiscourse
	}

	return govlens.PlatformUnknown
}

// detectFromMetaGenerator checks the meta generator tag for platform identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) govlens.Platform {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return govlens.PlatformUnknown
	}

	if strings.Contains(generator, "discourse") {
		return govlens.PlatformDiscourse
	}

	return govlens.PlatformUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
