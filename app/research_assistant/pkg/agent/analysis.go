package agent

import (
	"context"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/prompts"
)

// AnalysisAgent 提取趋势、风险与机会
type AnalysisAgent struct {
	gen      llm.Generator
	recorder *metrics.Recorder
}

// NewAnalysisAgent 创建分析阶段
func NewAnalysisAgent(gen llm.Generator, rec *metrics.Recorder) *AnalysisAgent {
	return &AnalysisAgent{gen: gen, recorder: rec}
}

// Analyze 一次 reasoning 调用，不重试。
// 只有解析失败才替换为预置结果，字段缺失的合法 JSON 原样保留。
func (a *AnalysisAgent) Analyze(ctx context.Context, finding *model.ResearchFinding) (*model.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &model.AnalysisResult{
		OriginalQuery: finding.Query,
		AgentType:     model.AgentTypeAnalysis,
	}

	msgs, err := prompts.Analysis(ctx, finding.Findings)
	var out string
	if err == nil {
		out, err = a.gen.Generate(ctx, msgs, llm.ProfileReasoning)
	}
	if err != nil {
		recordFallback(a.recorder, model.AgentTypeAnalysis, errorReason(err), err)
		res.Analysis = FallbackAnalysis()
		res.Error = err.Error()
		return res, nil
	}

	if err := decodeObject(out, &res.Analysis); err != nil {
		recordFallback(a.recorder, model.AgentTypeAnalysis, reasonParse, err)
		res.Analysis = FallbackAnalysis()
	}
	return res, nil
}
