package server

import (
	"context"
	"os"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shyam3raju/AI-Agent/app/display/internal/conf"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/assistant"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	raLogger "github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/orchestrator"
)

// ToConfig 将 internal/conf.Research 转换为 pkg/config.Config
func ToConfig(c *conf.Research) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		cfg.SetDefaults()
		return cfg
	}

	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			BaseURL:   c.Llm.BaseUrl,
			APIKey:    c.Llm.ApiKey,
			Timeout:   int(c.Llm.Timeout),
			Fast:      config.ProfileConfig{Model: c.Llm.FastModel},
			Reasoning: config.ProfileConfig{Model: c.Llm.ReasoningModel},
		}
	}
	if s := c.Search; s != nil {
		cfg.Search.Provider = s.Provider
		cfg.Search.QuerySuffix = s.QuerySuffix
		cfg.Search.FetchContent = s.FetchContent
		if s.Duckduckgo != nil {
			cfg.Search.DuckDuckGo = config.DuckDuckGoConfig{BaseURL: s.Duckduckgo.BaseUrl, Timeout: int(s.Duckduckgo.Timeout)}
		}
		if s.Tavily != nil {
			cfg.Search.Tavily = config.TavilyConfig{APIKey: s.Tavily.ApiKey}
		}
		if s.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{BaseURL: s.Searxng.BaseUrl, Timeout: int(s.Searxng.Timeout)}
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{QPS: int(c.Concurrency.Qps), RPM: int(c.Concurrency.Rpm)}
	}

	cfg.SetDefaults()
	return cfg
}

// NewResearchPipeline 初始化研究流水线，指标注册到 reg
func NewResearchPipeline(c *conf.Research, reg prometheus.Registerer, logger log.Logger) (*orchestrator.Orchestrator, error) {
	cfg := ToConfig(c)
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 初始化日志
	if err := raLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init research logger: %v", err)
		_ = raLogger.InitLogger("info", "") // 降级处理
	}

	orch, err := assistant.NewFromConfig(context.Background(), cfg, metrics.NewRecorder(reg), nil)
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init research pipeline: %v", err)
		return nil, err
	}
	return orch, nil
}
