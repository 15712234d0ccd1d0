package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
)

// Profile 模型预设
type Profile string

const (
	ProfileFast      Profile = "fast"      // 低延迟，用于摘要
	ProfileReasoning Profile = "reasoning" // 用于研究、分析与决策
)

// Generator 向托管模型发起一次对话请求并返回生成的文本
type Generator interface {
	Generate(ctx context.Context, messages []*schema.Message, profile Profile) (string, error)
}

// ProfileSettings 单个预设的模型参数
type ProfileSettings struct {
	Model       string
	Temperature *float32
	MaxTokens   int
}

// Options 客户端选项
type Options struct {
	APIKey   string
	Timeout  time.Duration
	Profiles map[Profile]ProfileSettings
	Limiter  *rate.Limiter
	Recorder *metrics.Recorder
}

// Client 基于 eino ChatModel 的 Generator 实现
type Client struct {
	chatModel model.BaseChatModel
	apiKey    string
	timeout   time.Duration
	profiles  map[Profile]ProfileSettings
	limiter   *rate.Limiter
	recorder  *metrics.Recorder
}

var _ Generator = (*Client)(nil)

// NewClient 使用给定的 ChatModel 创建客户端
func NewClient(chatModel model.BaseChatModel, opts Options) *Client {
	return &Client{
		chatModel: chatModel,
		apiKey:    opts.APIKey,
		timeout:   opts.Timeout,
		profiles:  opts.Profiles,
		limiter:   opts.Limiter,
		recorder:  opts.Recorder,
	}
}

// NewFromConfig 根据配置创建 OpenAI 兼容（默认 Groq）的客户端
func NewFromConfig(ctx context.Context, cfg config.LLMConfig, conc config.ConcurrencyConfig, rec *metrics.Recorder) (*Client, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Reasoning.Model,
		Timeout: cfg.RequestTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	return NewClient(chatModel, Options{
		APIKey:  cfg.APIKey,
		Timeout: cfg.RequestTimeout(),
		Profiles: map[Profile]ProfileSettings{
			ProfileFast: {
				Model:       cfg.Fast.Model,
				Temperature: cfg.Fast.Temperature,
				MaxTokens:   cfg.Fast.MaxTokens,
			},
			ProfileReasoning: {
				Model:       cfg.Reasoning.Model,
				Temperature: cfg.Reasoning.Temperature,
				MaxTokens:   cfg.Reasoning.MaxTokens,
			},
		},
		Limiter:  NewLimiter(conc),
		Recorder: rec,
	}), nil
}

// NewLimiter 按 RPM/60 设置速率、QPS 设置突发量；RPM 未配置时不限流
func NewLimiter(c config.ConcurrencyConfig) *rate.Limiter {
	if c.RPM <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := c.QPS
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(c.RPM)/60.0), burst)
}

// Generate 实现 Generator
func (c *Client) Generate(ctx context.Context, messages []*schema.Message, profile Profile) (string, error) {
	settings, ok := c.profiles[profile]
	if !ok {
		return "", &Error{Kind: KindProvider, Profile: profile, Err: fmt.Errorf("unknown profile %q", profile)}
	}
	if c.apiKey == "" {
		err := &Error{Kind: KindAuth, Profile: profile, Err: errors.New("api key is not configured")}
		c.recorder.ObserveLLMCall(string(profile), string(err.Kind), 0, 0, 0)
		return "", err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &Error{Kind: classify(err), Profile: profile, Err: err}
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := []model.Option{model.WithModel(settings.Model)}
	if settings.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(settings.MaxTokens))
	}
	if settings.Temperature != nil {
		opts = append(opts, model.WithTemperature(*settings.Temperature))
	}

	start := time.Now()
	resp, err := c.chatModel.Generate(ctx, messages, opts...)
	elapsed := time.Since(start)
	if err == nil && (resp == nil || strings.TrimSpace(resp.Content) == "") {
		err = ErrEmptyResponse
	}
	if err != nil {
		e := &Error{Kind: classify(err), Profile: profile, Err: err}
		c.recorder.ObserveLLMCall(string(profile), string(e.Kind), 0, 0, elapsed)
		logger.Log.Warnf("LLM 调用失败 [%s/%s]: %v", profile, settings.Model, err)
		return "", e
	}

	var promptTokens, completionTokens int
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		promptTokens = resp.ResponseMeta.Usage.PromptTokens
		completionTokens = resp.ResponseMeta.Usage.CompletionTokens
	}
	c.recorder.ObserveLLMCall(string(profile), "", promptTokens, completionTokens, elapsed)
	logger.Log.Debugf("LLM 调用完成 [%s/%s] 耗时 %s", profile, settings.Model, elapsed)

	return strings.TrimSpace(resp.Content), nil
}
