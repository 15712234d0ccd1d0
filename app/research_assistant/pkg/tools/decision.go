package tools

import (
	"context"
	"encoding/json"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/prompts"
)

// DecisionTool 根据分析 JSON 生成建议，返回模型原始输出
type DecisionTool struct {
	gen      llm.Generator
	recorder *metrics.Recorder
}

// NewDecisionTool 创建决策工具
func NewDecisionTool(gen llm.Generator, rec *metrics.Recorder) *DecisionTool {
	return &DecisionTool{gen: gen, recorder: rec}
}

// Run 发起一次 reasoning 调用；失败时返回预置建议的 JSON 文本
func (t *DecisionTool) Run(ctx context.Context, analysisJSON string) string {
	msgs, err := prompts.Decision(ctx, analysisJSON)
	if err == nil {
		var out string
		out, err = t.gen.Generate(ctx, msgs, llm.ProfileReasoning)
		if err == nil {
			return out
		}
	}

	logger.Log.Warnf("决策工具调用失败，返回预置建议: %v", err)
	t.recorder.IncFallback("decision_tool", string(llm.KindOf(err)))
	data, _ := json.MarshalIndent(ToolFallbackDecisions(), "", "  ")
	return string(data)
}

// ToolFallbackDecisions 决策工具失败时的预置建议
func ToolFallbackDecisions() model.Decisions {
	return model.Decisions{
		Recommendations: []model.Recommendation{
			{
				Action:    "Monitor AI technology developments closely",
				Rationale: "Rapid pace of AI advancement requires continuous awareness",
				Priority:  model.PriorityHigh,
				Timeline:  model.TimelineShort,
			},
		},
		KeyConsiderations: model.StringList{"Technology adoption costs", "Competitive landscape"},
		RiskMitigation:    model.StringList{"Gradual implementation", "Staff training programs"},
	}
}
