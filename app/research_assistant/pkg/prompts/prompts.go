package prompts

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// 模板使用 Go text/template 语法，JSON 示例中的单个花括号无需转义

const researchTpl = `Based on the following search results about "{{.query}}", provide a structured summary focusing on:
- Key facts and recent developments
- Important trends
- Concrete data points

Search Results:
{{.findings}}

Provide a factual summary without opinions or speculation:`

const summarizeTpl = `Summarize the following text content into a concise, factual summary.
Focus on key facts, trends, and important information.
Avoid opinions and speculation.
Keep the summary under 200 words.

Text to summarize:
{{.text}}

Summary:`

const analysisTpl = `Analyze the following research findings about AI topics.
Extract and categorize information into the specified structure.

Research Findings:
{{.findings}}

Provide your analysis in this exact JSON format:
{
    "key_trends": [
        "Trend 1: Description",
        "Trend 2: Description",
        "Trend 3: Description"
    ],
    "risks": [
        "Risk 1: Description and potential impact",
        "Risk 2: Description and potential impact"
    ],
    "opportunities": [
        "Opportunity 1: Description and potential value",
        "Opportunity 2: Description and potential value"
    ],
    "business_impact": {
        "short_term": "Impact expected in next 6-12 months",
        "medium_term": "Impact expected in 1-3 years",
        "long_term": "Impact expected in 3+ years"
    },
    "market_dynamics": [
        "Dynamic 1: Description",
        "Dynamic 2: Description"
    ]
}

Focus on business-relevant insights and concrete implications.`

const decisionTpl = `Based on the following AI market analysis, generate strategic business recommendations.

Analysis Data:
{{.analysis}}

Provide recommendations in this exact JSON format:
{
    "recommendations": [
        {
            "action": "Specific actionable recommendation",
            "rationale": "Why this recommendation makes sense",
            "priority": "High/Medium/Low",
            "timeline": "Short/Medium/Long term"
        }
    ],
    "key_considerations": ["consideration1", "consideration2"],
    "risk_mitigation": ["risk1_mitigation", "risk2_mitigation"]
}

Focus on practical, business-ready actions.`

const restructureTpl = `Based on this analysis, provide strategic recommendations in JSON format:

Analysis: {{.analysis}}
Decision Tool Output: {{.tool_output}}

Format as:
{
    "recommendations": [
        {
            "action": "Specific action",
            "rationale": "Why this makes sense",
            "priority": "High/Medium/Low",
            "timeline": "Short/Medium/Long term"
        }
    ],
    "key_considerations": ["consideration1", "consideration2"],
    "risk_mitigation": ["mitigation1", "mitigation2"]
}`

const jsonSystem = "You are a JSON generator. Respond with a single JSON object only."

var (
	research    = prompt.FromMessages(schema.GoTemplate, schema.UserMessage(researchTpl))
	summarize   = prompt.FromMessages(schema.GoTemplate, schema.UserMessage(summarizeTpl))
	analysis    = prompt.FromMessages(schema.GoTemplate, schema.SystemMessage(jsonSystem), schema.UserMessage(analysisTpl))
	decision    = prompt.FromMessages(schema.GoTemplate, schema.SystemMessage(jsonSystem), schema.UserMessage(decisionTpl))
	restructure = prompt.FromMessages(schema.GoTemplate, schema.SystemMessage(jsonSystem), schema.UserMessage(restructureTpl))
)

// Research 研究阶段：基于搜索结果生成事实摘要
func Research(ctx context.Context, query, findings string) ([]*schema.Message, error) {
	return format(ctx, "research", research, map[string]any{"query": query, "findings": findings})
}

// Summarize 摘要工具
func Summarize(ctx context.Context, text string) ([]*schema.Message, error) {
	return format(ctx, "summarize", summarize, map[string]any{"text": text})
}

// Analysis 分析阶段，要求返回固定结构的 JSON
func Analysis(ctx context.Context, findings string) ([]*schema.Message, error) {
	return format(ctx, "analysis", analysis, map[string]any{"findings": findings})
}

// Decision 决策工具，要求返回建议 JSON
func Decision(ctx context.Context, analysisJSON string) ([]*schema.Message, error) {
	return format(ctx, "decision", decision, map[string]any{"analysis": analysisJSON})
}

// Restructure 决策工具输出不是 JSON 时的第二次请求
func Restructure(ctx context.Context, analysisJSON, toolOutput string) ([]*schema.Message, error) {
	return format(ctx, "restructure", restructure, map[string]any{"analysis": analysisJSON, "tool_output": toolOutput})
}

func format(ctx context.Context, name string, tpl prompt.ChatTemplate, vars map[string]any) ([]*schema.Message, error) {
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("format %s prompt: %w", name, err)
	}
	return msgs, nil
}
