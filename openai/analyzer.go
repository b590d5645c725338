// Package openai implements proposal analysis using the OpenAI API.
package openai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/govlens"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Defaults for the analysis model. Changing them changes scoring
// behavior, so overrides are options rather than config knobs.
const (
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

var _ govlens.Analyzer = (*Analyzer)(nil)

// Analyzer implements govlens.Analyzer using OpenAI chat completions.
// The model is instructed to score the proposal against the rubric and
// reply with a fixed JSON structure.
type Analyzer struct {
	client      openai.Client
	rubric      govlens.Rubric
	model       string
	temperature float64
	maxTokens   int64
	baseURL     string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(a *Analyzer) { a.model = model }
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(a *Analyzer) { a.temperature = temperature }
}

// WithMaxTokens overrides the default completion token limit.
func WithMaxTokens(maxTokens int64) Option {
	return func(a *Analyzer) { a.maxTokens = maxTokens }
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(a *Analyzer) { a.baseURL = baseURL }
}

// NewAnalyzer creates a new Analyzer. A nil rubric selects the default
// review rubric. Returns ECONFIG if apiKey is empty.
func NewAnalyzer(apiKey string, rubric govlens.Rubric, opts ...Option) (*Analyzer, error) {
	if apiKey == "" {
		return nil, govlens.Errorf(govlens.ECONFIG, "OpenAI API key required")
	}

	a := &Analyzer{
		rubric:      rubric,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rubric == nil {
		a.rubric = govlens.DefaultRubric()
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if a.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(a.baseURL))
	}
	a.client = openai.NewClient(reqOpts...)

	return a, nil
}

// Analyze scores the proposal against the rubric.
func (a *Analyzer) Analyze(ctx context.Context, proposal *govlens.Proposal) (*govlens.Analysis, error) {
	if proposal == nil {
		return nil, govlens.Errorf(govlens.EINVALID, "proposal required")
	}
	if err := proposal.Validate(); err != nil {
		return nil, err
	}

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(BuildSystemPrompt(a.rubric)),
			openai.UserMessage(BuildUserPrompt(proposal)),
		},
		Temperature: openai.Float(a.temperature),
		MaxTokens:   openai.Int(a.maxTokens),
	})
	if err != nil {
		return nil, govlens.Errorf(govlens.EPROVIDER, "openai: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, govlens.Errorf(govlens.EPROVIDER, "openai returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, govlens.Errorf(govlens.EPROVIDER, "openai returned empty response")
	}

	return ParseAnalysis(content)
}

// ParseAnalysis parses the model's JSON response into an Analysis.
// Markdown code fences around the JSON are tolerated.
// Returns EPROVIDER if the response is not valid JSON or violates the
// scoring contract.
func ParseAnalysis(response string) (*govlens.Analysis, error) {
	cleaned := stripFences(strings.TrimSpace(response))

	var analysis govlens.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, govlens.Errorf(govlens.EPROVIDER, "parsing analysis response: %v", err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, govlens.Errorf(govlens.EPROVIDER, "invalid analysis response: %s", govlens.ErrorMessage(err))
	}

	return &analysis, nil
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
