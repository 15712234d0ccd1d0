package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/orchestrator"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/search"
)

type routedGenerator struct {
	calls map[llm.Profile]int
}

func (g *routedGenerator) Generate(_ context.Context, msgs []*schema.Message, p llm.Profile) (string, error) {
	g.calls[p]++
	last := msgs[len(msgs)-1].Content
	switch {
	case p == llm.ProfileFast:
		return "condensed", nil
	case strings.Contains(last, "recommendations"):
		return `{"recommendations":[{"action":"Run a pilot","priority":"High"}]}`, nil
	case strings.Contains(last, "key_trends"):
		return `{"key_trends":["agents"],"business_impact":{"short_term":"pilots"}}`, nil
	default:
		return "Agents are being adopted.", nil
	}
}

type longSearcher struct{}

func (longSearcher) Search(context.Context, *search.Request) (*search.Response, error) {
	return &search.Response{Summary: strings.Repeat("agents ", 100)}, nil
}

func TestBuild_RunsAllStages(t *testing.T) {
	gen := &routedGenerator{calls: map[llm.Profile]int{}}
	var phases []orchestrator.Phase

	o := Build(Deps{
		Generator:   gen,
		Searcher:    longSearcher{},
		QuerySuffix: config.DefaultQuerySuffix,
		Recorder:    metrics.NewRecorder(prometheus.NewRegistry()),
		Progress:    func(p orchestrator.Phase, _ int) { phases = append(phases, p) },
	})
	report := o.ProcessQuery(context.Background(), "AI agents")

	require.Equal(t, model.StatusCompleted, report.Status)
	assert.Equal(t, "Agents are being adopted.", report.Summary)
	assert.Equal(t, []string{"agents"}, report.KeyTrends)
	require.Len(t, report.RecommendedActions, 1)
	assert.Equal(t, model.RecommendedAction{Action: "Run a pilot", Priority: "High", Timeline: "Medium term"}, report.RecommendedActions[0])
	assert.Equal(t, 1, gen.calls[llm.ProfileFast])
	assert.Equal(t, 3, gen.calls[llm.ProfileReasoning])
	assert.Equal(t, orchestrator.PhaseCompleted, phases[len(phases)-1])
}

func TestNewFromConfig_InvalidProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Provider = "bing"

	_, err := NewFromConfig(context.Background(), cfg, nil, nil)
	assert.Error(t, err)
}
