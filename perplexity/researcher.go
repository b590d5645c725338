// Package perplexity implements ecosystem research using the Perplexity
// chat completions API. Perplexity has no official Go SDK, so this is a
// minimal client for the one endpoint the researcher needs.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/govlens"
)

// Defaults for the research model. Changing them changes the character
// of the ecosystem summary, so overrides are options rather than config
// knobs.
const (
	DefaultBaseURL     = "https://api.perplexity.ai"
	DefaultModel       = "sonar-pro"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 60 * time.Second
)

// systemPrompt frames the model as a NEAR governance evaluator.
const systemPrompt = "You are a NEAR governance evaluator based on your current and historic knowledge of NEAR ecosystem."

var _ govlens.Researcher = (*Researcher)(nil)

// Researcher implements govlens.Researcher using Perplexity's
// search-backed chat completions.
type Researcher struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// Option configures a Researcher.
type Option func(*Researcher)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(r *Researcher) { r.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(r *Researcher) { r.model = model }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Researcher) { r.client = client }
}

// NewResearcher creates a new Researcher.
// Returns ECONFIG if apiKey is empty.
func NewResearcher(apiKey string, opts ...Option) (*Researcher, error) {
	if apiKey == "" {
		return nil, govlens.Errorf(govlens.ECONFIG, "Perplexity API key required")
	}

	r := &Researcher{
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		client:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// Research asks the model how the proposal compares to prior ecosystem
// activity.
func (r *Researcher) Research(ctx context.Context, proposal *govlens.Proposal) (*govlens.EcosystemContext, error) {
	if proposal == nil {
		return nil, govlens.Errorf(govlens.EINVALID, "proposal required")
	}
	if err := proposal.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(chatRequest{
		Model: r.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildQuery(proposal)},
		},
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
	})
	if err != nil {
		return nil, govlens.Errorf(govlens.EINTERNAL, "marshaling request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, govlens.Errorf(govlens.EINTERNAL, "creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, govlens.Errorf(govlens.EPROVIDER, "perplexity: %v", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, govlens.Errorf(govlens.EPROVIDER, "reading response: %v", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, govlens.Errorf(govlens.EPROVIDER, "perplexity api error (status %d): %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, govlens.Errorf(govlens.EPROVIDER, "parsing response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, govlens.Errorf(govlens.EPROVIDER, "perplexity returned no choices")
	}

	summary := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if summary == "" {
		return nil, govlens.Errorf(govlens.EPROVIDER, "perplexity returned empty response")
	}

	return &govlens.EcosystemContext{
		Summary:   summary,
		Citations: parsed.Citations,
	}, nil
}

// BuildQuery renders the research question for the proposal. Identical
// proposal input always yields an identical query.
func BuildQuery(proposal *govlens.Proposal) string {
	return "Give a short analysis of how this proposal compares to others, and whether it is needed/comprehensive, dont add any footnotes: " + proposal.Body
}
