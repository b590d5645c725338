package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/govlens"
	"github.com/fwojciec/govlens/mock"
	govslog "github.com/fwojciec/govlens/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("logs detected platform with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockExtractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			GetForHTMLFn: func(html string) govlens.Extractor {
				return mockExtractor
			},
		}
		detector := &mock.PlatformDetector{
			DetectFn: func(html string) govlens.Platform {
				return govlens.PlatformDiscourse
			},
		}

		registry := govslog.NewLoggingRegistry(inner, detector, logger)
		extractor := registry.GetForHTML("<html>discourse</html>")

		assert.Equal(t, mockExtractor, extractor)
		output := buf.String()
		assert.Contains(t, output, "platform detection")
		assert.Contains(t, output, "platform=discourse")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown platform", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockExtractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			GetForHTMLFn: func(html string) govlens.Extractor {
				return mockExtractor
			},
		}
		detector := &mock.PlatformDetector{
			DetectFn: func(html string) govlens.Platform {
				return govlens.PlatformUnknown
			},
		}

		registry := govslog.NewLoggingRegistry(inner, detector, logger)
		registry.GetForHTML("<html>unknown</html>")

		output := buf.String()
		assert.Contains(t, output, "platform=(unknown)")
	})
}

func TestLoggingRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		mockExtractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			GetFn: func(platform govlens.Platform) govlens.Extractor {
				return mockExtractor
			},
		}

		registry := govslog.NewLoggingRegistry(inner, nil, logger)
		extractor := registry.Get(govlens.PlatformDiscourse)

		assert.Equal(t, mockExtractor, extractor)
	})
}

func TestLoggingRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var registeredPlatform govlens.Platform
		var registeredExtractor govlens.Extractor
		mockExtractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			RegisterFn: func(platform govlens.Platform, extractor govlens.Extractor) {
				registeredPlatform = platform
				registeredExtractor = extractor
			},
		}

		registry := govslog.NewLoggingRegistry(inner, nil, logger)
		registry.Register(govlens.PlatformDiscourse, mockExtractor)

		assert.Equal(t, govlens.PlatformDiscourse, registeredPlatform)
		assert.Equal(t, mockExtractor, registeredExtractor)
	})
}
