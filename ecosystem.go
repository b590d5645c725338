package govlens

import "context"

// EcosystemContext is background on how a proposal compares to prior
// NEAR ecosystem activity, produced by a search-backed model.
type EcosystemContext struct {
	// Summary is the model's short comparison of the proposal to
	// similar past proposals.
	Summary string `json:"summary"`

	// Citations lists source URLs backing the summary, when the model
	// provides them.
	Citations []string `json:"citations,omitempty"`
}

// Researcher gathers ecosystem context for proposals.
type Researcher interface {
	// Research returns ecosystem context for the proposal.
	// Returns EPROVIDER if the model cannot be reached or returns an
	// unusable response.
	Research(ctx context.Context, proposal *Proposal) (*EcosystemContext, error)
}
