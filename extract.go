package govlens

// ExtractResult holds the content extracted from a proposal page.
type ExtractResult struct {
	// Title is the proposal title. Empty if none could be found.
	Title string

	// ContentHTML is the proposal post as clean HTML.
	// Boilerplate (nav, replies, sidebar) has been removed.
	ContentHTML string
}

// Extractor extracts the proposal post from page HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the proposal content.
	// Returns EEXTRACT if no post content can be found.
	Extract(html string) (*ExtractResult, error)
}

// ExtractorChain tries extractors in order and returns the first
// successful result. An extractor that finds no content hands off to
// the next one; any other failure stops the chain.
type ExtractorChain []Extractor

// Extract runs the chain. Returns the last extractor's EEXTRACT error
// when every extractor comes up empty.
func (c ExtractorChain) Extract(html string) (*ExtractResult, error) {
	var lastErr error
	for _, e := range c {
		result, err := e.Extract(html)
		if err == nil {
			return result, nil
		}
		if ErrorCode(err) != EEXTRACT {
			return nil, err
		}
		lastErr = err
	}
	if lastErr == nil {
		return nil, Errorf(EEXTRACT, "no extractors configured")
	}
	return nil, lastErr
}

// Platform identifies the forum software serving a page.
type Platform string

// Platforms with dedicated extractors.
const (
	PlatformUnknown   Platform = "unknown"
	PlatformDiscourse Platform = "discourse"
)

// PlatformDetector identifies the forum platform from page HTML.
type PlatformDetector interface {
	// Detect inspects HTML and returns the detected platform.
	// Returns PlatformUnknown if no known platform is recognized.
	Detect(html string) Platform
}

// ExtractorRegistry maps platforms to content extractors.
type ExtractorRegistry interface {
	// Get returns the extractor registered for a platform.
	// Returns nil if no extractor is registered.
	Get(platform Platform) Extractor

	// GetForHTML detects the platform from the HTML and returns the
	// matching extractor. Falls back to a generic extractor when the
	// platform is unknown or has no registered extractor.
	GetForHTML(html string) Extractor

	// Register adds an extractor for a platform.
	Register(platform Platform, extractor Extractor)
}
