// Package govlens analyzes NEAR governance proposals. It fetches a
// proposal page from the governance forum, extracts the post content as
// markdown, scores it against a fixed review rubric using an LLM, and
// gathers ecosystem context from a search-backed model. Results are
// served through a small web UI and a CLI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, openai/).
package govlens
