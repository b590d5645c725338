package perplexity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/govlens"
	"github.com/fwojciec/govlens/perplexity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ govlens.Researcher = (*perplexity.Researcher)(nil)

func testProposal() *govlens.Proposal {
	return &govlens.Proposal{
		URL:   "https://gov.near.org/t/example/1",
		Title: "Example Proposal",
		Body:  "We request 500 NEAR for a community campaign.",
	}
}

// chatServer replies to chat completion requests with the given
// assistant message content and citations. The last request body is
// stored in gotBody when non-nil.
func chatServer(t *testing.T, content string, citations []string, gotBody *[]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if gotBody != nil {
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			*gotBody = b
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []any{
				map[string]any{
					"message": map[string]any{"role": "assistant", "content": content},
				},
			},
			"citations": citations,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResearcher_Research(t *testing.T) {
	t.Parallel()

	t.Run("returns summary with citations", func(t *testing.T) {
		t.Parallel()

		var gotBody []byte
		srv := chatServer(t, "Similar campaigns were funded in 2022.", []string{"https://gov.near.org/t/prior/1"}, &gotBody)

		researcher, err := perplexity.NewResearcher("test-key", perplexity.WithBaseURL(srv.URL))
		require.NoError(t, err)

		ecosystem, err := researcher.Research(context.Background(), testProposal())

		require.NoError(t, err)
		assert.Equal(t, "Similar campaigns were funded in 2022.", ecosystem.Summary)
		assert.Equal(t, []string{"https://gov.near.org/t/prior/1"}, ecosystem.Citations)

		body := string(gotBody)
		assert.Contains(t, body, "sonar-pro")
		assert.Contains(t, body, "NEAR governance evaluator")
		assert.Contains(t, body, "We request 500 NEAR for a community campaign.")
	})

	t.Run("returns EPROVIDER on API error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": "rate limited"}`))
		}))
		t.Cleanup(srv.Close)

		researcher, err := perplexity.NewResearcher("test-key", perplexity.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = researcher.Research(context.Background(), testProposal())

		require.Error(t, err)
		assert.Equal(t, govlens.EPROVIDER, govlens.ErrorCode(err))
		assert.Contains(t, govlens.ErrorMessage(err), "status 429")
	})

	t.Run("returns EPROVIDER on empty response", func(t *testing.T) {
		t.Parallel()

		srv := chatServer(t, "", nil, nil)

		researcher, err := perplexity.NewResearcher("test-key", perplexity.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = researcher.Research(context.Background(), testProposal())

		require.Error(t, err)
		assert.Equal(t, govlens.EPROVIDER, govlens.ErrorCode(err))
	})

	t.Run("returns EPROVIDER on malformed body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		t.Cleanup(srv.Close)

		researcher, err := perplexity.NewResearcher("test-key", perplexity.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = researcher.Research(context.Background(), testProposal())

		require.Error(t, err)
		assert.Equal(t, govlens.EPROVIDER, govlens.ErrorCode(err))
	})

	t.Run("rejects invalid proposal", func(t *testing.T) {
		t.Parallel()

		researcher, err := perplexity.NewResearcher("test-key")
		require.NoError(t, err)

		_, err = researcher.Research(context.Background(), &govlens.Proposal{URL: "https://gov.near.org/t/x/1"})

		require.Error(t, err)
		assert.Equal(t, govlens.EINVALID, govlens.ErrorCode(err))
	})
}

func TestNewResearcher(t *testing.T) {
	t.Parallel()

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := perplexity.NewResearcher("")

		require.Error(t, err)
		assert.Equal(t, govlens.ECONFIG, govlens.ErrorCode(err))
	})
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		p := testProposal()
		assert.Equal(t, perplexity.BuildQuery(p), perplexity.BuildQuery(p))
	})

	t.Run("includes proposal body", func(t *testing.T) {
		t.Parallel()

		q := perplexity.BuildQuery(testProposal())
		assert.Contains(t, q, "We request 500 NEAR for a community campaign.")
		assert.Contains(t, q, "how this proposal compares to others")
	})
}
