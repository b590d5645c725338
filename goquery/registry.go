package goquery

import "github.com/fwojciec/govlens"

var _ govlens.ExtractorRegistry = (*Registry)(nil)

// Registry manages platform-specific content extractors and auto-detects
// platforms from HTML content. It uses a PlatformDetector to identify the
// forum platform and returns the appropriate extractor, falling back to a
// generic extractor when the platform is unknown or no specific extractor
// is registered.
type Registry struct {
	detector   govlens.PlatformDetector
	fallback   govlens.Extractor
	extractors map[govlens.Platform]govlens.Extractor
}

// NewRegistry creates a new Registry with the given detector and fallback
// extractor. The fallback is used when GetForHTML cannot find a specific
// extractor for the detected platform.
func NewRegistry(detector govlens.PlatformDetector, fallback govlens.Extractor) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[govlens.Platform]govlens.Extractor),
	}
}

// Get returns the extractor for a specific platform.
// Returns nil if no extractor is registered for the platform.
func (r *Registry) Get(platform govlens.Platform) govlens.Extractor {
	return r.extractors[platform]
}

// GetForHTML detects the platform from HTML and returns the appropriate
// extractor. Falls back to the fallback extractor if the platform is
// unknown or no extractor is registered for it.
func (r *Registry) GetForHTML(html string) govlens.Extractor {
	platform := r.detector.Detect(html)
	if extractor, ok := r.extractors[platform]; ok {
		return extractor
	}
	return r.fallback
}

// Register adds an extractor for a platform.
// If an extractor is already registered for the platform, it is replaced.
func (r *Registry) Register(platform govlens.Platform, extractor govlens.Extractor) {
	r.extractors[platform] = extractor
}
