package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/search"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tvly-key", r.Header.Get("Authorization"))

		var req SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "agents AI", req.Query)
		assert.Equal(t, "basic", req.SearchDepth)
		assert.Equal(t, "general", req.Topic)
		assert.Equal(t, 5, req.MaxResults)
		assert.True(t, req.IncludeAnswer)

		_ = json.NewEncoder(w).Encode(SearchResponse{
			Answer: "Agents are growing.",
			Results: []SearchResult{
				{Title: "Agents", URL: "https://example.com/a", Content: "Agent adoption rises", Score: 0.9},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("tvly-key").WithBaseURL(srv.URL)
	resp, err := c.Search(context.Background(), &search.Request{Query: "agents AI", IncludeAnswer: true})
	require.NoError(t, err)
	assert.Equal(t, "Agents are growing.", resp.Answer)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Agent adoption rises", resp.Results[0].Content)
	assert.Equal(t, 0.9, resp.Results[0].Score)
}

func TestClient_SearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient("bad").WithBaseURL(srv.URL).Search(context.Background(), &search.Request{Query: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
