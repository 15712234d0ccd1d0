package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/llm"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
)

// Searcher 返回搜索文本，自身不会失败
type Searcher interface {
	Run(ctx context.Context, query string) string
}

// Summarizer 压缩长文本，自身不会失败
type Summarizer interface {
	Run(ctx context.Context, text string) string
}

// Recommender 根据分析 JSON 返回模型的原始建议文本
type Recommender interface {
	Run(ctx context.Context, analysisJSON string) string
}

// 回退原因
const (
	reasonParse = "parse"
)

var errNotObject = errors.New("model output is not a JSON object")

// decodeObject 去掉 ```json 代码块标记后解析 JSON 对象
func decodeObject(raw string, v any) error {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	if !strings.HasPrefix(clean, "{") {
		return errNotObject
	}
	return json.Unmarshal([]byte(clean), v)
}

func recordFallback(rec *metrics.Recorder, stage, reason string, err error) {
	logger.Log.WithField("stage", stage).WithField("reason", reason).Warnf("使用预置结果: %v", err)
	rec.IncFallback(stage, reason)
}

func errorReason(err error) string {
	return string(llm.KindOf(err))
}
