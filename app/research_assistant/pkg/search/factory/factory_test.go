package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/duckduckgo"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/searxng"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/tavily"
)

func TestNewSearcher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SearchConfig
		want    any
		wantErr bool
	}{
		{name: "default duckduckgo", cfg: config.SearchConfig{}, want: &duckduckgo.Client{}},
		{name: "implicit tavily", cfg: config.SearchConfig{Tavily: config.TavilyConfig{APIKey: "k"}}, want: &tavily.Client{}},
		{name: "tavily without key", cfg: config.SearchConfig{Provider: "tavily"}, wantErr: true},
		{name: "searxng", cfg: config.SearchConfig{Provider: "searxng", SearXNG: config.SearXNGConfig{BaseURL: "http://s"}}, want: &searxng.Client{}},
		{name: "searxng without url", cfg: config.SearchConfig{Provider: "searxng"}, wantErr: true},
		{name: "unknown", cfg: config.SearchConfig{Provider: "bing"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSearcher(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}
