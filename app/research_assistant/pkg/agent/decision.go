package agent

import (
	"context"
	"encoding/json"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/prompts"
)

// DecisionAgent 生成可执行的建议
type DecisionAgent struct {
	gen         llm.Generator
	recommender Recommender
	recorder    *metrics.Recorder
}

// NewDecisionAgent 创建决策阶段
func NewDecisionAgent(gen llm.Generator, recommender Recommender, rec *metrics.Recorder) *DecisionAgent {
	return &DecisionAgent{gen: gen, recommender: recommender, recorder: rec}
}

// Decide 先用决策工具生成建议；输出不是 JSON 时再发起一次整理请求，
// 仍然失败则使用预置建议。每次最多两次 LLM 调用。
func (a *DecisionAgent) Decide(ctx context.Context, analysis *model.AnalysisResult) (*model.DecisionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &model.DecisionResult{
		OriginalQuery: analysis.OriginalQuery,
		AgentType:     model.AgentTypeDecision,
	}

	data, err := json.MarshalIndent(analysis.Analysis, "", "  ")
	if err != nil {
		recordFallback(a.recorder, model.AgentTypeDecision, "encode", err)
		res.Decisions = FallbackDecisions()
		res.Error = err.Error()
		return res, nil
	}
	analysisJSON := string(data)

	toolOut := a.recommender.Run(ctx, analysisJSON)
	if err := decodeObject(toolOut, &res.Decisions); err == nil {
		return res, nil
	}
	res.Decisions = model.Decisions{}
	logger.Log.Infof("决策工具输出不是 JSON，重新整理")

	msgs, err := prompts.Restructure(ctx, analysisJSON, toolOut)
	var out string
	if err == nil {
		out, err = a.gen.Generate(ctx, msgs, llm.ProfileReasoning)
	}
	if err != nil {
		recordFallback(a.recorder, model.AgentTypeDecision, errorReason(err), err)
		res.Decisions = FallbackDecisions()
		res.Error = err.Error()
		return res, nil
	}

	if err := decodeObject(out, &res.Decisions); err != nil {
		recordFallback(a.recorder, model.AgentTypeDecision, reasonParse, err)
		res.Decisions = FallbackDecisions()
	}
	return res, nil
}
