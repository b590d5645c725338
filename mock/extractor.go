package mock

import "github.com/fwojciec/govlens"

var _ govlens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of govlens.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*govlens.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*govlens.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ govlens.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of govlens.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(html string) govlens.Platform
}

func (d *PlatformDetector) Detect(html string) govlens.Platform {
	return d.DetectFn(html)
}

var _ govlens.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of govlens.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn        func(platform govlens.Platform) govlens.Extractor
	GetForHTMLFn func(html string) govlens.Extractor
	RegisterFn   func(platform govlens.Platform, extractor govlens.Extractor)
}

func (r *ExtractorRegistry) Get(platform govlens.Platform) govlens.Extractor {
	return r.GetFn(platform)
}

func (r *ExtractorRegistry) GetForHTML(html string) govlens.Extractor {
	return r.GetForHTMLFn(html)
}

func (r *ExtractorRegistry) Register(platform govlens.Platform, extractor govlens.Extractor) {
	r.RegisterFn(platform, extractor)
}
