package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/agent"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/orchestrator"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/search"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/search/factory"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/tools"
)

const fetchTimeout = 30 * time.Second

// Deps 组装流水线所需的协作者
type Deps struct {
	Generator   llm.Generator
	Searcher    search.Searcher
	QuerySuffix string
	Fetch       tools.ContentFetcher
	Recorder    *metrics.Recorder
	Progress    func(phase orchestrator.Phase, progress int)
}

// NewFromConfig 根据配置创建协作者并组装流水线
func NewFromConfig(ctx context.Context, cfg *config.Config, rec *metrics.Recorder, progress func(orchestrator.Phase, int)) (*orchestrator.Orchestrator, error) {
	gen, err := llm.NewFromConfig(ctx, cfg.LLM, cfg.Concurrency, rec)
	if err != nil {
		return nil, err
	}

	searcher, err := factory.NewSearcher(cfg.Search)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	var fetch tools.ContentFetcher
	if cfg.Search.FetchContent {
		fetch = tools.ReadabilityFetcher(fetchTimeout)
	}

	return Build(Deps{
		Generator:   gen,
		Searcher:    searcher,
		QuerySuffix: cfg.Search.QuerySuffix,
		Fetch:       fetch,
		Recorder:    rec,
		Progress:    progress,
	}), nil
}

// Build 用给定的协作者组装流水线
func Build(d Deps) *orchestrator.Orchestrator {
	searchTool := tools.NewSearchTool(d.Searcher, d.QuerySuffix, d.Fetch, d.Recorder)
	summarizeTool := tools.NewSummarizeTool(d.Generator, d.Recorder)
	decisionTool := tools.NewDecisionTool(d.Generator, d.Recorder)

	return orchestrator.New(
		agent.NewResearchAgent(d.Generator, searchTool, summarizeTool, d.Recorder),
		agent.NewAnalysisAgent(d.Generator, d.Recorder),
		agent.NewDecisionAgent(d.Generator, decisionTool, d.Recorder),
		orchestrator.Options{ProgressCallback: d.Progress, Recorder: d.Recorder},
	)
}
