package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder 流水线指标，nil 时不记录
type Recorder struct {
	llmRequests    *prometheus.CounterVec
	llmDuration    *prometheus.HistogramVec
	llmTokens      *prometheus.CounterVec
	stageFallbacks *prometheus.CounterVec
	pipelineRuns   *prometheus.CounterVec
}

// NewRecorder 在 reg 上注册指标
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "research_llm_requests_total",
				Help: "Total number of LLM requests by profile, status and error type",
			},
			[]string{"profile", "status", "error_type"},
		),
		llmDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "research_llm_request_duration_seconds",
				Help:    "Duration of LLM requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"profile"},
		),
		llmTokens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "research_llm_tokens_total",
				Help: "Total number of tokens reported by the provider",
			},
			[]string{"profile", "type"},
		),
		stageFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "research_stage_fallbacks_total",
				Help: "Number of times a stage substituted its fallback output",
			},
			[]string{"stage", "reason"},
		),
		pipelineRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "research_pipeline_runs_total",
				Help: "Number of pipeline runs by final status",
			},
			[]string{"status"},
		),
	}
}

// ObserveLLMCall 记录一次 LLM 请求，成功时 errorType 为空
func (r *Recorder) ObserveLLMCall(profile, errorType string, promptTokens, completionTokens int, duration time.Duration) {
	if r == nil {
		return
	}
	status := "success"
	if errorType != "" {
		status = "error"
	}
	r.llmRequests.WithLabelValues(profile, status, errorType).Inc()
	r.llmDuration.WithLabelValues(profile).Observe(duration.Seconds())
	if promptTokens > 0 {
		r.llmTokens.WithLabelValues(profile, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		r.llmTokens.WithLabelValues(profile, "completion").Add(float64(completionTokens))
	}
}

// IncFallback 阶段或工具使用了预置结果
func (r *Recorder) IncFallback(stage, reason string) {
	if r == nil {
		return
	}
	r.stageFallbacks.WithLabelValues(stage, reason).Inc()
}

// IncRun 一次流水线运行结束
func (r *Recorder) IncRun(status string) {
	if r == nil {
		return
	}
	r.pipelineRuns.WithLabelValues(status).Inc()
}
