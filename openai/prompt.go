package openai

import (
	"fmt"
	"strings"

	"github.com/fwojciec/govlens"
)

// responseContract instructs the model on the exact JSON shape to
// return. ParseAnalysis depends on this structure.
const responseContract = `Return a JSON with this EXACT structure (no additional fields):
{
    "writing_quality": {
        "status": "PASS",
        "score": 3,
        "explanation": "Brief explanation",
        "supporting_quotes": ["quote 1", "quote 2"]
    },
    "proposal_clarity": {
        "status": "PASS",
        "score": 3,
        "explanation": "Brief explanation",
        "supporting_quotes": ["quote 1", "quote 2"]
    },
    "key_elements": {
        "status": "PASS",
        "score": 3,
        "explanation": "Brief explanation",
        "elements_found": ["element 1", "element 2"],
        "elements_missing": ["element 1", "element 2"],
        "comments": ["comment 1", "comment 2"]
    },
    "weighted_score": 3
}`

// BuildSystemPrompt renders the reviewer instructions from the rubric.
// Identical rubric input always yields an identical prompt.
func BuildSystemPrompt(rubric govlens.Rubric) string {
	var sb strings.Builder
	sb.WriteString("You are an expert reviewer for NEAR Protocol governance proposals. Analyze proposals using these criteria, adapting to proposal type (e.g., technical, community, infrastructure):\n\n")
	for i, dim := range rubric {
		fmt.Fprintf(&sb, "%d. %s (%s):\n", i+1, dim.Name, dim.Weight)
		for _, line := range dim.Guidance {
			sb.WriteString("   - " + line + "\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(responseContract)
	return sb.String()
}

// BuildUserPrompt renders the proposal for analysis. Identical proposal
// input always yields an identical prompt.
func BuildUserPrompt(proposal *govlens.Proposal) string {
	var sb strings.Builder
	sb.WriteString("Please analyze this proposal and return ONLY the JSON response with no additional text or formatting:\n\n")
	if proposal.Title != "" {
		sb.WriteString("# " + proposal.Title + "\n\n")
	}
	sb.WriteString(proposal.Body)
	return sb.String()
}
