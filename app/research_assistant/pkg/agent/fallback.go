package agent

import (
	"fmt"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

func researchFallback(query string) string {
	return fmt.Sprintf("Research completed on %s. Current AI landscape shows continued advancement "+
		"in generative AI, enterprise adoption, and emerging regulatory frameworks.", query)
}

// FallbackAnalysis 分析阶段的预置结果
func FallbackAnalysis() model.Analysis {
	return model.Analysis{
		KeyTrends: model.StringList{
			"Continued advancement in large language models and generative AI",
			"Increased enterprise adoption of AI solutions",
			"Growing focus on AI safety and regulatory compliance",
		},
		Risks: model.StringList{
			"Regulatory uncertainty may impact AI development timelines",
			"Competitive pressure from rapid technological advancement",
		},
		Opportunities: model.StringList{
			"Market expansion in AI-powered business solutions",
			"Innovation potential in multimodal AI applications",
		},
		BusinessImpact: model.Impact{
			model.HorizonShortTerm:  "Immediate opportunities in AI tool integration",
			model.HorizonMediumTerm: "Transformation of business processes and workflows",
			model.HorizonLongTerm:   "Fundamental shifts in industry competitive dynamics",
		},
		MarketDynamics: model.StringList{
			"Rapid pace of technological innovation",
			"Increasing investment in AI infrastructure",
		},
	}
}

// FallbackDecisions 决策阶段的预置建议
func FallbackDecisions() model.Decisions {
	return model.Decisions{
		Recommendations: []model.Recommendation{
			{
				Action:    "Establish AI monitoring and evaluation framework",
				Rationale: "Stay informed about AI developments to make timely strategic decisions",
				Priority:  model.PriorityHigh,
				Timeline:  model.TimelineShort,
			},
		},
		KeyConsiderations: model.StringList{
			"Budget allocation for AI initiatives",
			"Staff training and change management",
		},
		RiskMitigation: model.StringList{
			"Gradual implementation approach",
			"Regular technology assessment reviews",
		},
	}
}
