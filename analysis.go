package govlens

import "context"

// Score bounds for rubric dimensions.
const (
	ScoreMin = 0
	ScoreMax = 4
)

// Statuses the analyzer assigns to each dimension.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Assessment is the scored result for a single rubric dimension.
type Assessment struct {
	// Status is StatusPass or StatusFail.
	Status string `json:"status"`

	// Score is the dimension score, ScoreMin through ScoreMax.
	Score int `json:"score"`

	// Explanation is the model's brief reasoning for the score.
	Explanation string `json:"explanation"`

	// SupportingQuotes are passages from the proposal backing the
	// assessment.
	SupportingQuotes []string `json:"supporting_quotes"`
}

// ElementsAssessment is the scored result for the key elements dimension.
// It itemizes which required elements (budget, team, milestones, etc.)
// were found and which are missing.
type ElementsAssessment struct {
	// Status is StatusPass or StatusFail.
	Status string `json:"status"`

	// Score is the dimension score, ScoreMin through ScoreMax.
	Score int `json:"score"`

	// Explanation is the model's brief reasoning for the score.
	Explanation string `json:"explanation"`

	// ElementsFound lists required elements present in the proposal.
	ElementsFound []string `json:"elements_found"`

	// ElementsMissing lists required elements absent from the proposal.
	ElementsMissing []string `json:"elements_missing"`

	// Comments are additional observations, e.g. feasibility concerns.
	Comments []string `json:"comments"`
}

// Analysis is the structured review produced by the analyzer.
// The field names and shape match the JSON contract the model is
// instructed to return.
type Analysis struct {
	WritingQuality  Assessment         `json:"writing_quality"`
	ProposalClarity Assessment         `json:"proposal_clarity"`
	KeyElements     ElementsAssessment `json:"key_elements"`

	// WeightedScore is the overall score computed by the model from the
	// dimension weights, ScoreMin through ScoreMax.
	WeightedScore float64 `json:"weighted_score"`
}

// Validate returns EINVALID if the analysis violates the scoring contract.
func (a *Analysis) Validate() error {
	dims := []struct {
		name   string
		status string
		score  int
	}{
		{"writing_quality", a.WritingQuality.Status, a.WritingQuality.Score},
		{"proposal_clarity", a.ProposalClarity.Status, a.ProposalClarity.Score},
		{"key_elements", a.KeyElements.Status, a.KeyElements.Score},
	}
	for _, d := range dims {
		if d.status != StatusPass && d.status != StatusFail {
			return Errorf(EINVALID, "dimension %s has invalid status %q", d.name, d.status)
		}
		if d.score < ScoreMin || d.score > ScoreMax {
			return Errorf(EINVALID, "dimension %s score %d out of range", d.name, d.score)
		}
	}
	if a.WeightedScore < ScoreMin || a.WeightedScore > ScoreMax {
		return Errorf(EINVALID, "weighted score %.2f out of range", a.WeightedScore)
	}
	return nil
}

// Analyzer scores proposals against the review rubric.
type Analyzer interface {
	// Analyze scores the proposal and returns the structured result.
	// Returns EPROVIDER if the model cannot be reached or returns an
	// unusable response.
	Analyze(ctx context.Context, proposal *Proposal) (*Analysis, error)
}
