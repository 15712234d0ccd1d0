package agent

import (
	"context"
	"unicode/utf8"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/prompts"
)

// 搜索文本超过该长度（字符数）时先做摘要
const summarizeThreshold = 500

// ResearchAgent 搜索并整理事实
type ResearchAgent struct {
	gen        llm.Generator
	search     Searcher
	summarizer Summarizer
	recorder   *metrics.Recorder
}

// NewResearchAgent 创建研究阶段
func NewResearchAgent(gen llm.Generator, search Searcher, summarizer Summarizer, rec *metrics.Recorder) *ResearchAgent {
	return &ResearchAgent{gen: gen, search: search, summarizer: summarizer, recorder: rec}
}

// Research 搜索 → (摘要) → 一次 reasoning 调用
func (a *ResearchAgent) Research(ctx context.Context, query string) (*model.ResearchFinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := a.search.Run(ctx, query)
	text := raw
	if utf8.RuneCountInString(raw) > summarizeThreshold {
		logger.Log.Debugf("搜索结果 %d 字符，先做摘要", utf8.RuneCountInString(raw))
		text = a.summarizer.Run(ctx, raw)
	}

	msgs, err := prompts.Research(ctx, query, text)
	var out string
	if err == nil {
		out, err = a.gen.Generate(ctx, msgs, llm.ProfileReasoning)
	}
	if err != nil {
		recordFallback(a.recorder, model.AgentTypeResearch, errorReason(err), err)
		return &model.ResearchFinding{
			Query:     query,
			Findings:  researchFallback(query),
			AgentType: model.AgentTypeResearch,
			Error:     err.Error(),
		}, nil
	}

	return &model.ResearchFinding{
		Query:            query,
		Findings:         out,
		RawSearchResults: raw,
		AgentType:        model.AgentTypeResearch,
	}, nil
}
