package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/govlens"
)

// Ensure LoggingResearcher implements govlens.Researcher.
var _ govlens.Researcher = (*LoggingResearcher)(nil)

// LoggingResearcher wraps a Researcher with debug logging.
type LoggingResearcher struct {
	next   govlens.Researcher
	logger *slog.Logger
}

// NewLoggingResearcher creates a new LoggingResearcher.
func NewLoggingResearcher(next govlens.Researcher, logger *slog.Logger) *LoggingResearcher {
	return &LoggingResearcher{next: next, logger: logger}
}

// Research delegates to the wrapped researcher and logs the operation.
func (r *LoggingResearcher) Research(ctx context.Context, proposal *govlens.Proposal) (ecosystem *govlens.EcosystemContext, err error) {
	defer func(begin time.Time) {
		var citations int
		if ecosystem != nil {
			citations = len(ecosystem.Citations)
		}
		r.logger.Info("research",
			"url", proposal.URL,
			"citations", citations,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Research(ctx, proposal)
}
