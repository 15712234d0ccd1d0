package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

var divider = strings.Repeat("=", 50)

var horizonOrder = map[string]int{
	model.HorizonShortTerm:  0,
	model.HorizonMediumTerm: 1,
	model.HorizonLongTerm:   2,
}

// Format 生成控制台展示文本
func Format(r *model.FinalReport) string {
	var lines []string
	section := func(title string) {
		lines = append(lines, title, divider)
	}

	section("📋 SUMMARY")
	if r.Summary != "" {
		lines = append(lines, r.Summary)
	} else {
		lines = append(lines, "No summary available")
	}
	if r.Error != "" {
		lines = append(lines, "⚠️  "+r.Error)
	}
	lines = append(lines, "")

	section("📈 KEY TRENDS")
	if len(r.KeyTrends) == 0 {
		lines = append(lines, "No specific trends identified")
	}
	for i, trend := range r.KeyTrends {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, trend))
	}
	lines = append(lines, "")

	section("💼 BUSINESS IMPACT")
	if len(r.BusinessImpact) == 0 {
		lines = append(lines, "Business impact assessment pending")
	}
	for _, horizon := range sortedHorizons(r.BusinessImpact) {
		lines = append(lines, fmt.Sprintf("• %s: %s", titleCase(horizon), r.BusinessImpact[horizon]))
	}
	lines = append(lines, "")

	section("🎯 RECOMMENDED ACTIONS")
	if len(r.RecommendedActions) == 0 {
		lines = append(lines, "No specific actions recommended")
	}
	for i, a := range r.RecommendedActions {
		action := a.Action
		if action == "" {
			action = "No action specified"
		}
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, action),
			"   Priority: "+orDefault(a.Priority, model.PriorityMedium),
			"   Timeline: "+orDefault(a.Timeline, model.TimelineMedium),
		)
		if a.Rationale != "" {
			lines = append(lines, "   Rationale: "+a.Rationale)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// sortedHorizons 短中长期在前，其余按字母序
func sortedHorizons(impact map[string]string) []string {
	keys := make([]string, 0, len(impact))
	for k := range impact {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := horizonOrder[keys[i]]
		oj, jok := horizonOrder[keys[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// titleCase short_term → Short Term
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
