package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	DB          DBConfig          `yaml:"db"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	Timeout   int           `yaml:"timeout"` // 单次请求超时（秒）
	Fast      ProfileConfig `yaml:"fast"`
	Reasoning ProfileConfig `yaml:"reasoning"`
}

// ProfileConfig 模型预设：fast 用于摘要，reasoning 用于分析与决策
type ProfileConfig struct {
	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
}

// RequestTimeout 返回请求超时时间
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider     string           `yaml:"provider"`
	QuerySuffix  string           `yaml:"query_suffix"`
	FetchContent bool             `yaml:"fetch_content"` // 摘要过短时使用 readability 抓取正文
	DuckDuckGo   DuckDuckGoConfig `yaml:"duckduckgo"`
	Tavily       TavilyConfig     `yaml:"tavily"`
	SearXNG      SearXNGConfig    `yaml:"searxng"`
}

// DuckDuckGoConfig DuckDuckGo Instant Answer 配置
type DuckDuckGoConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// OutputConfig 结果文件输出配置
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DBConfig 数据库相关配置，Driver 为空时不启用存储
type DBConfig struct {
	Driver string `yaml:"driver"` // postgres 或 sqlite
	Source string `yaml:"source"`
}

// 默认值，与原始的 Groq 模型预设保持一致
const (
	DefaultLLMBaseURL     = "https://api.groq.com/openai/v1"
	DefaultLLMTimeout     = 60
	DefaultFastModel      = "llama-3.1-8b-instant"
	DefaultReasoningModel = "llama-3.3-70b-versatile"
	DefaultSearchProvider = "duckduckgo"
	DefaultQuerySuffix    = "AI artificial intelligence"
)

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.SetDefaults()
	return &cfg, nil
}

// Default 返回仅包含默认值的配置，配置文件缺失时使用
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults 填充未配置的字段
func (c *Config) SetDefaults() {
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = DefaultLLMBaseURL
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = DefaultLLMTimeout
	}
	if c.LLM.Fast.Model == "" {
		c.LLM.Fast.Model = DefaultFastModel
	}
	if c.LLM.Fast.Temperature == nil {
		c.LLM.Fast.Temperature = float32Ptr(0.0)
	}
	if c.LLM.Fast.MaxTokens <= 0 {
		c.LLM.Fast.MaxTokens = 512
	}
	if c.LLM.Reasoning.Model == "" {
		c.LLM.Reasoning.Model = DefaultReasoningModel
	}
	if c.LLM.Reasoning.Temperature == nil {
		c.LLM.Reasoning.Temperature = float32Ptr(0.1)
	}
	if c.LLM.Reasoning.MaxTokens <= 0 {
		c.LLM.Reasoning.MaxTokens = 2048
	}

	if c.Search.Provider == "" {
		c.Search.Provider = DefaultSearchProvider
	}
	if c.Search.QuerySuffix == "" {
		c.Search.QuerySuffix = DefaultQuerySuffix
	}
	if c.Search.DuckDuckGo.Timeout <= 0 {
		c.Search.DuckDuckGo.Timeout = 10
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
}

// ApplyEnv 在组装阶段从环境变量补全凭证，配置文件中的值优先
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = getenv("GROQ_API_KEY")
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = getenv("LLM_API_KEY")
	}
	if c.Search.Tavily.APIKey == "" {
		c.Search.Tavily.APIKey = getenv("TAVILY_API_KEY")
	}
	if c.Search.SearXNG.BaseURL == "" {
		c.Search.SearXNG.BaseURL = getenv("SEARXNG_BASE_URL")
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Search.Provider {
	case "duckduckgo", "tavily", "searxng":
	default:
		return fmt.Errorf("unknown search provider: %s", c.Search.Provider)
	}
	switch c.DB.Driver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db driver: %s", c.DB.Driver)
	}
	if c.DB.Driver != "" && c.DB.Source == "" {
		return fmt.Errorf("db source is required for driver %s", c.DB.Driver)
	}
	if c.Concurrency.QPS < 0 || c.Concurrency.RPM < 0 {
		return fmt.Errorf("concurrency limits must not be negative")
	}
	return nil
}

func float32Ptr(v float32) *float32 {
	return &v
}
