package server

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyam3raju/AI-Agent/app/display/internal/conf"
	"github.com/shyam3raju/AI-Agent/app/display/internal/data"
	"github.com/shyam3raju/AI-Agent/app/display/internal/service"
	"github.com/shyam3raju/AI-Agent/app/display/internal/usecase"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

type stubPipeline struct{}

func (stubPipeline) ProcessQuery(_ context.Context, query string) *model.FinalReport {
	return &model.FinalReport{
		Query:     query,
		Summary:   "summary",
		KeyTrends: []string{"agents"},
		Status:    model.StatusCompleted,
	}
}

func newTestServer(t *testing.T) nethttp.Handler {
	t.Helper()
	d, cleanup, err := data.NewData(&conf.Data{Database: &conf.Database{Driver: "sqlite", Source: ":memory:"}}, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	uc := usecase.NewReportUseCase(data.NewReportRepo(d, log.DefaultLogger), stubPipeline{}, log.DefaultLogger)
	return NewHTTPServer(&conf.Server{Http: &conf.HTTP{Timeout: "5s"}}, service.NewDisplayService(uc, log.DefaultLogger), log.DefaultLogger)
}

func do(t *testing.T, h nethttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTPServer_ResearchFlow(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, nethttp.MethodPost, "/api/v1/research", `{"query":"AI agents"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var created struct {
		ID     string            `json:"id"`
		Status string            `json:"status"`
		Report model.FinalReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "completed", created.Status)
	assert.Equal(t, []string{"agents"}, created.Report.KeyTrends)

	rec = do(t, h, nethttp.MethodGet, "/api/v1/reports/"+created.ID, "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"query":"AI agents"`)

	rec = do(t, h, nethttp.MethodGet, "/api/v1/reports?page=1&page_size=5", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var list service.ListReportsReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Reports, 1)
	assert.Equal(t, created.ID, list.Reports[0].ID)
}

func TestHTTPServer_Errors(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, nethttp.MethodPost, "/api/v1/research", `{"query":"  "}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_QUERY")

	rec = do(t, h, nethttp.MethodGet, "/api/v1/reports/unknown", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REPORT_NOT_FOUND")

	rec = do(t, h, nethttp.MethodGet, "/api/v1/reports", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reports":[],"total":0}`, rec.Body.String())
}

func TestHTTPServer_Metrics(t *testing.T) {
	rec := do(t, newTestServer(t), nethttp.MethodGet, "/metrics", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestToConfig(t *testing.T) {
	cfg := ToConfig(&conf.Research{
		Llm:    &conf.LLM{ApiKey: "k", FastModel: "small"},
		Search: &conf.Search{Provider: "searxng", Searxng: &conf.SearXNG{BaseUrl: "http://s", Timeout: 5}},
	})

	assert.Equal(t, "k", cfg.LLM.APIKey)
	assert.Equal(t, "small", cfg.LLM.Fast.Model)
	assert.NotEmpty(t, cfg.LLM.Reasoning.Model)
	assert.Equal(t, "http://s", cfg.Search.SearXNG.BaseURL)
	assert.Equal(t, 5, cfg.Search.SearXNG.Timeout)
	assert.NoError(t, cfg.Validate())

	assert.NotNil(t, ToConfig(nil))
}
