package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/govlens"
)

// Ensure LoggingRegistry implements govlens.ExtractorRegistry.
var _ govlens.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// platform detection.
type LoggingRegistry struct {
	next     govlens.ExtractorRegistry
	detector govlens.PlatformDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next govlens.ExtractorRegistry, detector govlens.PlatformDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform govlens.Platform) govlens.Extractor {
	return r.next.Get(platform)
}

// GetForHTML detects the platform, logs it, and returns the appropriate extractor.
func (r *LoggingRegistry) GetForHTML(html string) govlens.Extractor {
	begin := time.Now()
	platform := r.detector.Detect(html)
	platformName := string(platform)
	if platform == govlens.PlatformUnknown {
		platformName = "(unknown)"
	}
	r.logger.Info("platform detection",
		"platform", platformName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform govlens.Platform, extractor govlens.Extractor) {
	r.next.Register(platform, extractor)
}
