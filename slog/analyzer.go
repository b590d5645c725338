package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/govlens"
)

// Ensure LoggingAnalyzer implements govlens.Analyzer.
var _ govlens.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   govlens.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next govlens.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, proposal *govlens.Proposal) (analysis *govlens.Analysis, err error) {
	defer func(begin time.Time) {
		var score float64
		if analysis != nil {
			score = analysis.WeightedScore
		}
		a.logger.Info("analyze",
			"url", proposal.URL,
			"weighted_score", score,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, proposal)
}
