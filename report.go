package govlens

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReportFormat selects the serialization of a review report.
type ReportFormat string

// Supported report formats.
const (
	ReportMarkdown ReportFormat = "markdown"
	ReportJSON     ReportFormat = "json"
)

// Ext returns the file extension for the format, without the dot.
func (f ReportFormat) Ext() string {
	if f == ReportJSON {
		return "json"
	}
	return "md"
}

// ReportFilename returns the download filename for a review generated at
// t, e.g. "proposal_analysis_20250114_153045.json".
func ReportFilename(t time.Time, format ReportFormat) string {
	return "proposal_analysis_" + t.Format("20060102_150405") + "." + format.Ext()
}

// FormatScore renders a dimension score as "3/4".
func FormatScore(score int) string {
	return strconv.Itoa(score) + "/4"
}

// FormatWeightedScore renders the overall score as "2.80/4".
func FormatWeightedScore(score float64) string {
	return fmt.Sprintf("%.2f/4", score)
}

// AnalysisJSON serializes an analysis as indented JSON, the payload of
// the JSON report download.
func AnalysisJSON(a *Analysis) (string, error) {
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", Errorf(EINTERNAL, "marshaling analysis: %v", err)
	}
	return string(b), nil
}

// FormatReport renders a review as a markdown document. Sections mirror
// the web UI: score summary, one section per rubric dimension, ecosystem
// analysis, and the proposal outline.
func FormatReport(r *Review) string {
	if r == nil || r.Proposal == nil || r.Analysis == nil {
		return ""
	}

	var sb strings.Builder

	title := r.Proposal.Title
	if title == "" {
		title = DefaultTitle
	}
	sb.WriteString("# " + title + "\n\n")
	sb.WriteString(r.Proposal.URL + "\n\n")
	sb.WriteString("Reviewed: " + r.CreatedAt.UTC().Format("2006-01-02 15:04 MST") + "\n\n")

	sb.WriteString("## Scores\n\n")
	sb.WriteString("- Overall: " + FormatWeightedScore(r.Analysis.WeightedScore) + "\n")
	sb.WriteString("- Writing Quality: " + FormatScore(r.Analysis.WritingQuality.Score) + " (" + r.Analysis.WritingQuality.Status + ")\n")
	sb.WriteString("- Proposal Clarity: " + FormatScore(r.Analysis.ProposalClarity.Score) + " (" + r.Analysis.ProposalClarity.Status + ")\n")
	sb.WriteString("- Key Elements: " + FormatScore(r.Analysis.KeyElements.Score) + " (" + r.Analysis.KeyElements.Status + ")\n")

	writeAssessment(&sb, "Writing Quality", r.Analysis.WritingQuality)
	writeAssessment(&sb, "Proposal Clarity", r.Analysis.ProposalClarity)
	writeKeyElements(&sb, r.Analysis.KeyElements)

	if r.Ecosystem != nil && r.Ecosystem.Summary != "" {
		sb.WriteString("\n## NEAR Ecosystem Analysis\n\n")
		sb.WriteString(r.Ecosystem.Summary + "\n")
		writeList(&sb, "Citations:", r.Ecosystem.Citations)
	}

	if outline := Outline(r.Proposal.Body); len(outline) > 0 {
		sb.WriteString("\n## Proposal Structure\n\n")
		for _, e := range outline {
			sb.WriteString(strings.Repeat("  ", e.Level-1) + "- " + e.Title + "\n")
		}
	}

	sb.WriteString("\nContent hash: " + r.ContentHash + "\n")

	return sb.String()
}

func writeAssessment(sb *strings.Builder, name string, a Assessment) {
	sb.WriteString("\n## " + name + "\n\n")
	sb.WriteString(a.Explanation + "\n")
	if len(a.SupportingQuotes) > 0 {
		sb.WriteString("\nSupporting quotes:\n")
		for _, q := range a.SupportingQuotes {
			sb.WriteString("\n> " + q + "\n")
		}
	}
}

func writeKeyElements(sb *strings.Builder, ke ElementsAssessment) {
	sb.WriteString("\n## Key Elements\n\n")
	sb.WriteString(ke.Explanation + "\n")
	writeList(sb, "Found:", ke.ElementsFound)
	writeList(sb, "Missing:", ke.ElementsMissing)
	writeList(sb, "Comments:", ke.Comments)
}

func writeList(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + header + "\n\n")
	for _, item := range items {
		sb.WriteString("- " + item + "\n")
	}
}
