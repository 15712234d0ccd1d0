package conf

type Bootstrap struct {
	Server   *Server
	Data     *Data
	Research *Research
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Data struct {
	Database *Database
}

type Database struct {
	Driver string
	Source string
}

// Research 研究流水线配置，凭证缺省时从环境变量读取
type Research struct {
	Llm         *LLM         `json:"llm"`
	Search      *Search      `json:"search"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

type LLM struct {
	BaseUrl        string `json:"base_url"`
	ApiKey         string `json:"api_key"`
	Timeout        int32  `json:"timeout"`
	FastModel      string `json:"fast_model"`
	ReasoningModel string `json:"reasoning_model"`
}

type Search struct {
	Provider     string      `json:"provider"`
	QuerySuffix  string      `json:"query_suffix"`
	FetchContent bool        `json:"fetch_content"`
	Duckduckgo   *DuckDuckGo `json:"duckduckgo"`
	Tavily       *Tavily     `json:"tavily"`
	Searxng      *SearXNG    `json:"searxng"`
}

type DuckDuckGo struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}
