package tools

import (
	"context"
	"strings"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/prompts"
)

// SummarizeTool 用 fast 预设压缩长文本，LLM 失败时退化为抽取式摘要
type SummarizeTool struct {
	gen      llm.Generator
	recorder *metrics.Recorder
}

// NewSummarizeTool 创建摘要工具
func NewSummarizeTool(gen llm.Generator, rec *metrics.Recorder) *SummarizeTool {
	return &SummarizeTool{gen: gen, recorder: rec}
}

// Run 返回摘要文本，不会失败
func (t *SummarizeTool) Run(ctx context.Context, text string) string {
	msgs, err := prompts.Summarize(ctx, text)
	if err == nil {
		var out string
		out, err = t.gen.Generate(ctx, msgs, llm.ProfileFast)
		if err == nil {
			return out
		}
	}

	logger.Log.Warnf("摘要生成失败，使用抽取式摘要: %v", err)
	t.recorder.IncFallback("summarize", string(llm.KindOf(err)))
	return ExtractiveSummary(text)
}

// ExtractiveSummary 超过 100 个词时取前两句加上后续三句中提到 AI 的句子，最多三句
func ExtractiveSummary(text string) string {
	if len(strings.Fields(text)) <= 100 {
		return text
	}

	sentences := strings.Split(text, ".")
	picked := make([]string, 0, 5)
	picked = append(picked, sentences[:min(2, len(sentences))]...)
	if len(sentences) > 2 {
		for _, s := range sentences[2:min(5, len(sentences))] {
			if strings.Contains(s, "AI") || strings.Contains(strings.ToLower(s), "artificial intelligence") {
				picked = append(picked, s)
			}
		}
	}
	if len(picked) > 3 {
		picked = picked[:3]
	}
	return strings.Join(picked, ". ") + "."
}
