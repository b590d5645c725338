package govlens

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Review is the complete result of analyzing one proposal.
type Review struct {
	// Proposal is the fetched and extracted proposal.
	Proposal *Proposal `json:"proposal"`

	// Analysis is the rubric-based scoring of the proposal.
	Analysis *Analysis `json:"analysis"`

	// Ecosystem compares the proposal to prior ecosystem activity.
	Ecosystem *EcosystemContext `json:"ecosystem"`

	// ContentHash fingerprints the proposal body, so reviews of the
	// same URL can be compared across runs.
	ContentHash string `json:"content_hash"`

	// CreatedAt is when the review was produced.
	CreatedAt time.Time `json:"created_at"`
}

// ContentHash returns a stable fingerprint of proposal content.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// ReviewService runs the full analysis pipeline for a proposal URL.
type ReviewService interface {
	// Review fetches, extracts, and analyzes the proposal at url.
	// Returns EINVALID for an empty URL, EFETCH if the page cannot be
	// retrieved, EEXTRACT if no content can be extracted, and EPROVIDER
	// if a model call fails.
	Review(ctx context.Context, url string) (*Review, error)
}
