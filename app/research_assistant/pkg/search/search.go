package search

import "context"

// Searcher 定义通用的搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query         string
	Topic         string // "news" or "general"
	MaxResults    int
	IncludeAnswer bool
}

// Response 通用搜索响应
type Response struct {
	Summary string // 提供方给出的摘要（如 DuckDuckGo Abstract）
	Answer  string // 直接答案
	Results []Result
}

// IsEmpty 没有任何可用内容时返回 true
func (r *Response) IsEmpty() bool {
	return r == nil || (r.Summary == "" && r.Answer == "" && len(r.Results) == 0)
}

// Result 单条搜索结果
type Result struct {
	Title         string
	URL           string
	Content       string
	RawContent    string
	Score         float64
	PublishedDate string
}
