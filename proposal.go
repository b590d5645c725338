package govlens

// DefaultTitle is used when no title can be extracted from a proposal page.
const DefaultTitle = "Untitled Proposal"

// Proposal is a governance proposal captured from a forum page.
type Proposal struct {
	// URL is the address the proposal was fetched from.
	URL string `json:"url"`

	// Title is the proposal title as shown on the page.
	Title string `json:"title"`

	// Body is the proposal post content converted to markdown.
	Body string `json:"content"`
}

// Validate returns EINVALID if a required field is missing.
func (p *Proposal) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "proposal URL required")
	}
	if p.Body == "" {
		return Errorf(EINVALID, "proposal body required")
	}
	return nil
}
