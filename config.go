package govlens

// Config carries process-level settings read once at startup and passed
// into constructors.
type Config struct {
	// OpenAIAPIKey authenticates the proposal analyzer. Required.
	OpenAIAPIKey string

	// PerplexityAPIKey authenticates the ecosystem researcher. Required.
	PerplexityAPIKey string

	// Addr is the web UI listen address, e.g. ":8080".
	Addr string
}

// Validate returns ECONFIG if a required setting is missing.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return Errorf(ECONFIG, "OPENAI_API_KEY environment variable required")
	}
	if c.PerplexityAPIKey == "" {
		return Errorf(ECONFIG, "PPLX_API_KEY environment variable required")
	}
	return nil
}
