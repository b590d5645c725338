package mock

import (
	"context"

	"github.com/fwojciec/govlens"
)

var _ govlens.Researcher = (*Researcher)(nil)

// Researcher is a mock implementation of govlens.Researcher.
type Researcher struct {
	ResearchFn func(ctx context.Context, proposal *govlens.Proposal) (*govlens.EcosystemContext, error)
}

func (r *Researcher) Research(ctx context.Context, proposal *govlens.Proposal) (*govlens.EcosystemContext, error) {
	return r.ResearchFn(ctx, proposal)
}
