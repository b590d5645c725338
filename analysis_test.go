package govlens_test

import (
	"testing"

	"github.com/fwojciec/govlens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysis() *govlens.Analysis {
	return &govlens.Analysis{
		WritingQuality: govlens.Assessment{
			Status:           govlens.StatusPass,
			Score:            3,
			Explanation:      "Well structured and professional.",
			SupportingQuotes: []string{"We propose a three month campaign."},
		},
		ProposalClarity: govlens.Assessment{
			Status:      govlens.StatusFail,
			Score:       1,
			Explanation: "Objectives are not measurable.",
		},
		KeyElements: govlens.ElementsAssessment{
			Status:          govlens.StatusPass,
			Score:           3,
			Explanation:     "Most required elements are present.",
			ElementsFound:   []string{"budget", "timelines"},
			ElementsMissing: []string{"KPIs"},
			Comments:        []string{"Budget breakdown could be more detailed."},
		},
		WeightedScore: 2.4,
	}
}

func TestAnalysis_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid analysis", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validAnalysis().Validate())
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()

		a := validAnalysis()
		a.ProposalClarity.Status = "MAYBE"

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, govlens.EINVALID, govlens.ErrorCode(err))
		assert.Contains(t, govlens.ErrorMessage(err), "proposal_clarity")
	})

	t.Run("score above range", func(t *testing.T) {
		t.Parallel()

		a := validAnalysis()
		a.KeyElements.Score = 5

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, govlens.EINVALID, govlens.ErrorCode(err))
		assert.Contains(t, govlens.ErrorMessage(err), "key_elements")
	})

	t.Run("score below range", func(t *testing.T) {
		t.Parallel()

		a := validAnalysis()
		a.WritingQuality.Score = -1

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, govlens.EINVALID, govlens.ErrorCode(err))
	})

	t.Run("weighted score out of range", func(t *testing.T) {
		t.Parallel()

		a := validAnalysis()
		a.WeightedScore = 4.2

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, govlens.EINVALID, govlens.ErrorCode(err))
		assert.Contains(t, govlens.ErrorMessage(err), "weighted score")
	})

	t.Run("boundary scores are valid", func(t *testing.T) {
		t.Parallel()

		a := validAnalysis()
		a.WritingQuality.Score = govlens.ScoreMin
		a.KeyElements.Score = govlens.ScoreMax
		a.WeightedScore = 0

		assert.NoError(t, a.Validate())
	})
}
