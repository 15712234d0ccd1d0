package model

import "encoding/json"

// Agent 类型标识
const (
	AgentTypeResearch = "research"
	AgentTypeAnalysis = "analysis"
	AgentTypeDecision = "decision"
)

// ResearchFinding 研究阶段输出
type ResearchFinding struct {
	Query            string `json:"query"`
	Findings         string `json:"findings"`
	RawSearchResults string `json:"raw_search_results,omitempty"`
	AgentType        string `json:"agent_type"`
	Error            string `json:"error,omitempty"`
}

// AnalysisResult 分析阶段输出
type AnalysisResult struct {
	OriginalQuery string   `json:"original_query"`
	Analysis      Analysis `json:"analysis"`
	AgentType     string   `json:"agent_type"`
	Error         string   `json:"error,omitempty"`
}

// Analysis 模型返回的结构化分析，字段缺失时保持为空，不做补全
type Analysis struct {
	KeyTrends      StringList `json:"key_trends"`
	Risks          StringList `json:"risks"`
	Opportunities  StringList `json:"opportunities"`
	BusinessImpact Impact     `json:"business_impact"`
	MarketDynamics StringList `json:"market_dynamics"`
}

// IsEmpty 所有字段都为空时返回 true
func (a Analysis) IsEmpty() bool {
	return len(a.KeyTrends) == 0 && len(a.Risks) == 0 && len(a.Opportunities) == 0 &&
		len(a.BusinessImpact) == 0 && len(a.MarketDynamics) == 0
}

// DecisionResult 决策阶段输出
type DecisionResult struct {
	OriginalQuery string    `json:"original_query"`
	Decisions     Decisions `json:"decisions"`
	AgentType     string    `json:"agent_type"`
	Error         string    `json:"error,omitempty"`
}

// Decisions 模型返回的建议集合
type Decisions struct {
	Recommendations   []Recommendation `json:"recommendations"`
	KeyConsiderations StringList       `json:"key_considerations"`
	RiskMitigation    StringList       `json:"risk_mitigation"`
}

// IsEmpty 所有字段都为空时返回 true
func (d Decisions) IsEmpty() bool {
	return len(d.Recommendations) == 0 && len(d.KeyConsiderations) == 0 && len(d.RiskMitigation) == 0
}

// 建议优先级与时间范围的取值
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	TimelineShort  = "Short term"
	TimelineMedium = "Medium term"
	TimelineLong   = "Long term"
)

// Recommendation 单条建议
type Recommendation struct {
	Action    string `json:"action,omitempty"`
	Rationale string `json:"rationale,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Timeline  string `json:"timeline,omitempty"`

	// raw 非空表示模型返回的元素不是 JSON 对象
	raw json.RawMessage
}

// Malformed 返回无法识别为建议对象的原始元素
func (r Recommendation) Malformed() json.RawMessage {
	return r.raw
}

// Status 最终报告状态
type Status string

const (
	StatusCompleted           Status = "completed"
	StatusCompletedWithErrors Status = "completed_with_errors"
	StatusFailed              Status = "failed"
)

// ExecutionState 单个阶段的执行情况
type ExecutionState string

const (
	ExecutionCompleted ExecutionState = "completed"
	ExecutionPartial   ExecutionState = "partial"
)

// 执行摘要中的阶段名
const (
	StageResearchAgent = "research_agent"
	StageAnalysisAgent = "analysis_agent"
	StageDecisionAgent = "decision_agent"
)

// FinalReport 流水线最终输出
type FinalReport struct {
	Query                 string                    `json:"query"`
	Summary               string                    `json:"summary"`
	KeyTrends             []string                  `json:"key_trends"`
	BusinessImpact        map[string]string         `json:"business_impact"`
	RecommendedActions    []RecommendedAction       `json:"recommended_actions"`
	Status                Status                    `json:"status"`
	AgentExecutionSummary map[string]ExecutionState `json:"agent_execution_summary,omitempty"`
	Error                 string                    `json:"error,omitempty"`
}

// RecommendedAction 扁平化后的行动建议
type RecommendedAction struct {
	Action    string `json:"action"`
	Priority  string `json:"priority"`
	Timeline  string `json:"timeline"`
	Rationale string `json:"rationale"`
}

type failedReport struct {
	Error  string `json:"error"`
	Query  string `json:"query"`
	Status Status `json:"status"`
}

// MarshalJSON 失败的报告只输出 error/query/status，其余报告的列表字段总是输出为数组
func (r FinalReport) MarshalJSON() ([]byte, error) {
	if r.Status == StatusFailed {
		return json.Marshal(failedReport{Error: r.Error, Query: r.Query, Status: r.Status})
	}

	type plain FinalReport
	p := plain(r)
	if p.KeyTrends == nil {
		p.KeyTrends = []string{}
	}
	if p.BusinessImpact == nil {
		p.BusinessImpact = map[string]string{}
	}
	if p.RecommendedActions == nil {
		p.RecommendedActions = []RecommendedAction{}
	}
	return json.Marshal(p)
}
