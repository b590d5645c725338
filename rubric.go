package govlens

// RubricDimension is one criterion in the proposal review rubric.
type RubricDimension struct {
	// Name is the dimension heading shown to the model and in reports.
	Name string

	// Weight describes the dimension's contribution to the weighted
	// score, as free text (e.g. "20%").
	Weight string

	// Guidance lists what to look for and how to score, one bullet per
	// entry.
	Guidance []string
}

// Rubric is the ordered list of dimensions proposals are scored against.
type Rubric []RubricDimension

// DefaultRubric returns the standard review rubric for NEAR governance
// proposals. The wording is part of the scoring contract with the model,
// so edits here change scoring behavior.
func DefaultRubric() Rubric {
	return Rubric{
		{
			Name:   "Writing Quality",
			Weight: "20%",
			Guidance: []string{
				"Professional tone, correct grammar, no jargon, clear structure.",
				"Score 0-4 (0=incoherent, 1=poor with errors, 2=acceptable, 3=professional, 4=exceptional).",
			},
		},
		{
			Name:   "Proposal Clarity",
			Weight: "30%",
			Guidance: []string{
				"SMART objectives (Specific, Measurable, Achievable, Relevant, Time-bound).",
				"Score 0-4 (0=unclear, 1=vague, 2=partially clear, 3=clear, 4=highly detailed).",
			},
		},
		{
			Name:   "Key Elements",
			Weight: "40% for budget/timelines, 10% for team",
			Guidance: []string{
				"Required: budget (cost breakdown), team (roles, experience), goals, context, milestones, timelines, KPIs.",
				"Score 0-4 (0=missing most, 1=few present, 2=some present, 3=most present, 4=all present with detail).",
				"For incomplete elements, note feasibility or need for clarification.",
			},
		},
	}
}
