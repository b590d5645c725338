package govlens_test

import (
	"testing"
	"time"

	"github.com/fwojciec/govlens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReview() *govlens.Review {
	return &govlens.Review{
		Proposal: &govlens.Proposal{
			URL:   "https://gov.near.org/t/example/1",
			Title: "NFT Onboarding Campaign",
			Body:  "## Budget\n\n500 NEAR\n\n## Timeline\n\nThree months.",
		},
		Analysis: validAnalysis(),
		Ecosystem: &govlens.EcosystemContext{
			Summary:   "Similar campaigns have been funded before.",
			Citations: []string{"https://gov.near.org/t/other/2"},
		},
		ContentHash: govlens.ContentHash("## Budget\n\n500 NEAR\n\n## Timeline\n\nThree months."),
		CreatedAt:   time.Date(2025, 1, 14, 15, 30, 45, 0, time.UTC),
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("includes title scores and sections", func(t *testing.T) {
		t.Parallel()

		report := govlens.FormatReport(validReview())

		assert.Contains(t, report, "# NFT Onboarding Campaign")
		assert.Contains(t, report, "https://gov.near.org/t/example/1")
		assert.Contains(t, report, "- Overall: 2.40/4")
		assert.Contains(t, report, "- Writing Quality: 3/4 (PASS)")
		assert.Contains(t, report, "- Proposal Clarity: 1/4 (FAIL)")
		assert.Contains(t, report, "- Key Elements: 3/4 (PASS)")
		assert.Contains(t, report, "## Writing Quality")
		assert.Contains(t, report, "> We propose a three month campaign.")
		assert.Contains(t, report, "## NEAR Ecosystem Analysis")
		assert.Contains(t, report, "Similar campaigns have been funded before.")
		assert.Contains(t, report, "- https://gov.near.org/t/other/2")
	})

	t.Run("lists found and missing elements", func(t *testing.T) {
		t.Parallel()

		report := govlens.FormatReport(validReview())

		assert.Contains(t, report, "Found:\n\n- budget\n- timelines")
		assert.Contains(t, report, "Missing:\n\n- KPIs")
		assert.Contains(t, report, "Comments:\n\n- Budget breakdown could be more detailed.")
	})

	t.Run("includes proposal outline", func(t *testing.T) {
		t.Parallel()

		report := govlens.FormatReport(validReview())

		assert.Contains(t, report, "## Proposal Structure")
		assert.Contains(t, report, "  - Budget")
		assert.Contains(t, report, "  - Timeline")
	})

	t.Run("falls back to default title", func(t *testing.T) {
		t.Parallel()

		r := validReview()
		r.Proposal.Title = ""

		report := govlens.FormatReport(r)

		assert.Contains(t, report, "# Untitled Proposal")
	})

	t.Run("skips ecosystem section when absent", func(t *testing.T) {
		t.Parallel()

		r := validReview()
		r.Ecosystem = nil

		report := govlens.FormatReport(r)

		assert.NotContains(t, report, "NEAR Ecosystem Analysis")
	})

	t.Run("returns empty string for nil review", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, govlens.FormatReport(nil))
	})
}

func TestReportFilename(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 1, 14, 15, 30, 45, 0, time.UTC)

	assert.Equal(t, "proposal_analysis_20250114_153045.json", govlens.ReportFilename(ts, govlens.ReportJSON))
	assert.Equal(t, "proposal_analysis_20250114_153045.md", govlens.ReportFilename(ts, govlens.ReportMarkdown))
}

func TestFormatWeightedScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.80/4", govlens.FormatWeightedScore(2.8))
	assert.Equal(t, "0.00/4", govlens.FormatWeightedScore(0))
	assert.Equal(t, "4.00/4", govlens.FormatWeightedScore(4))
}

func TestAnalysisJSON(t *testing.T) {
	t.Parallel()

	out, err := govlens.AnalysisJSON(validAnalysis())

	require.NoError(t, err)
	assert.Contains(t, out, "\"writing_quality\"")
	assert.Contains(t, out, "\"proposal_clarity\"")
	assert.Contains(t, out, "\"key_elements\"")
	assert.Contains(t, out, "\"weighted_score\"")
	assert.Contains(t, out, "\"elements_missing\"")
}
