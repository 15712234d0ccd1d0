package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/search"
)

const defaultBaseURL = "https://api.duckduckgo.com/"

// Client DuckDuckGo Instant Answer API 客户端，无需 API Key
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建客户端，baseURL 为空时使用官方地址，timeout 单位为秒
func NewClient(baseURL string, timeout int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: t},
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// InstantAnswer Instant Answer 响应中用到的字段
type InstantAnswer struct {
	Abstract      string          `json:"Abstract"`
	AbstractURL   string          `json:"AbstractURL"`
	Heading       string          `json:"Heading"`
	Answer        json.RawMessage `json:"Answer"`
	RelatedTopics []RelatedTopic  `json:"RelatedTopics"`
}

// RelatedTopic 相关主题；分组条目只有 Name 和 Topics
type RelatedTopic struct {
	Text     string         `json:"Text"`
	FirstURL string         `json:"FirstURL"`
	Name     string         `json:"Name"`
	Topics   []RelatedTopic `json:"Topics"`
}

// Search 执行搜索
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo api error (status %d): %s", res.StatusCode, string(body))
	}

	var ia InstantAnswer
	if err := json.Unmarshal(body, &ia); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	out := &search.Response{
		Summary: ia.Abstract,
		Answer:  answerText(ia.Answer),
	}
	for i, topic := range ia.RelatedTopics {
		if req.MaxResults > 0 && i >= req.MaxResults {
			break
		}
		// 分组条目没有 Text，保留占位以维持原始顺序
		out.Results = append(out.Results, search.Result{
			Title:   topic.Name,
			URL:     topic.FirstURL,
			Content: topic.Text,
		})
	}
	return out, nil
}

// answerText Answer 通常是字符串，部分查询会返回对象
func answerText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
