package mock

import (
	"context"

	"github.com/fwojciec/govlens"
)

var _ govlens.ReviewService = (*ReviewService)(nil)

// ReviewService is a mock implementation of govlens.ReviewService.
type ReviewService struct {
	ReviewFn func(ctx context.Context, url string) (*govlens.Review, error)
}

func (s *ReviewService) Review(ctx context.Context, url string) (*govlens.Review, error) {
	return s.ReviewFn(ctx, url)
}
