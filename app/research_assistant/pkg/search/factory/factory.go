package factory

import (
	"fmt"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/duckduckgo"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/search"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/searxng"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例
func NewSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	provider := cfg.Provider
	if provider == "" {
		// 默认回退逻辑：有 tavily key 时使用 tavily，否则使用无需 key 的 duckduckgo
		if cfg.Tavily.APIKey != "" {
			provider = "tavily"
		} else {
			provider = "duckduckgo"
		}
	}

	switch provider {
	case "duckduckgo":
		return duckduckgo.NewClient(cfg.DuckDuckGo.BaseURL, cfg.DuckDuckGo.Timeout), nil

	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Tavily.APIKey), nil

	case "searxng":
		if cfg.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(cfg.SearXNG.BaseURL, cfg.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
