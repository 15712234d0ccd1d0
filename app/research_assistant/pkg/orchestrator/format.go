package orchestrator

import (
	"fmt"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

const defaultSummary = "Research completed on AI topics."

// formatReport 把三个阶段的输出整理成最终报告。
// 出现无法识别的建议元素时返回错误。
func formatReport(query string, research *model.ResearchFinding, analysis *model.AnalysisResult, decision *model.DecisionResult) (report *model.FinalReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			report, err = nil, fmt.Errorf("%v", r)
		}
	}()

	summary := research.Findings
	if summary == "" {
		summary = defaultSummary
	}

	recs := decision.Decisions.Recommendations
	actions := make([]model.RecommendedAction, 0, len(recs))
	for i, rec := range recs {
		if raw := rec.Malformed(); raw != nil {
			return nil, fmt.Errorf("recommendation %d is not an object: %s", i, raw)
		}
		priority := rec.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		timeline := rec.Timeline
		if timeline == "" {
			timeline = model.TimelineMedium
		}
		actions = append(actions, model.RecommendedAction{
			Action:    rec.Action,
			Priority:  priority,
			Timeline:  timeline,
			Rationale: rec.Rationale,
		})
	}

	return &model.FinalReport{
		Query:              query,
		Summary:            summary,
		KeyTrends:          []string(analysis.Analysis.KeyTrends),
		BusinessImpact:     map[string]string(analysis.Analysis.BusinessImpact),
		RecommendedActions: actions,
		Status:             model.StatusCompleted,
		AgentExecutionSummary: map[string]model.ExecutionState{
			model.StageResearchAgent: executionState(research.Findings != ""),
			model.StageAnalysisAgent: executionState(!analysis.Analysis.IsEmpty()),
			model.StageDecisionAgent: executionState(!decision.Decisions.IsEmpty()),
		},
	}, nil
}

func executionState(ok bool) model.ExecutionState {
	if ok {
		return model.ExecutionCompleted
	}
	return model.ExecutionPartial
}

// degradedReport 格式化失败时返回的最小报告
func degradedReport(query string, cause error) *model.FinalReport {
	return &model.FinalReport{
		Query:          query,
		Summary:        "Analysis completed with partial results.",
		KeyTrends:      []string{"AI technology advancement continues"},
		BusinessImpact: map[string]string{model.HorizonShortTerm: "Monitoring recommended"},
		RecommendedActions: []model.RecommendedAction{
			{Action: "Continue monitoring AI developments", Priority: model.PriorityMedium},
		},
		Status: model.StatusCompletedWithErrors,
		Error:  cause.Error(),
	}
}
