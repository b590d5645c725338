package mock

import (
	"context"

	"github.com/fwojciec/govlens"
)

var _ govlens.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of govlens.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, proposal *govlens.Proposal) (*govlens.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, proposal *govlens.Proposal) (*govlens.Analysis, error) {
	return a.AnalyzeFn(ctx, proposal)
}
