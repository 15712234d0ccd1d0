package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_PartialDocumentKeepsAllKeys(t *testing.T) {
	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(`{"key_trends": ["A", "B"], "unknown": 1}`), &a))

	assert.Equal(t, StringList{"A", "B"}, a.KeyTrends)
	assert.Empty(t, a.Risks)
	assert.False(t, a.IsEmpty())

	out, err := json.Marshal(a)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &keys))
	for _, k := range []string{"key_trends", "risks", "opportunities", "business_impact", "market_dynamics"} {
		assert.Contains(t, keys, k)
	}
	assert.NotContains(t, keys, "unknown")
}

func TestAnalysis_TolerantElements(t *testing.T) {
	var a Analysis
	doc := `{
		"key_trends": [{"name": "agents"}, 3, "plain"],
		"risks": "single risk",
		"business_impact": {"short_term": "soon", "long_term": {"note": "later"}},
		"market_dynamics": null
	}`
	require.NoError(t, json.Unmarshal([]byte(doc), &a))

	assert.Equal(t, StringList{`{"name":"agents"}`, "3", "plain"}, a.KeyTrends)
	assert.Equal(t, StringList{"single risk"}, a.Risks)
	assert.Equal(t, Impact{"short_term": "soon", "long_term": `{"note":"later"}`}, a.BusinessImpact)
	assert.Nil(t, a.MarketDynamics)
}

func TestImpact_ScalarValue(t *testing.T) {
	var m Impact
	require.NoError(t, json.Unmarshal([]byte(`"large"`), &m))
	assert.Equal(t, Impact{ImpactOverall: "large"}, m)
}

func TestAnalysis_NonObjectRejected(t *testing.T) {
	var a Analysis
	assert.Error(t, json.Unmarshal([]byte(`["a", "b"]`), &a))
}

func TestDecisions_Recommendations(t *testing.T) {
	var d Decisions
	doc := `{
		"recommendations": [
			{"action": "Pilot agents", "priority": "High", "extra": true},
			"just text",
			null
		],
		"key_considerations": ["cost"]
	}`
	require.NoError(t, json.Unmarshal([]byte(doc), &d))
	require.Len(t, d.Recommendations, 3)

	assert.Equal(t, "Pilot agents", d.Recommendations[0].Action)
	assert.Equal(t, "High", d.Recommendations[0].Priority)
	assert.Empty(t, d.Recommendations[0].Timeline)
	assert.Nil(t, d.Recommendations[0].Malformed())

	assert.Equal(t, `"just text"`, string(d.Recommendations[1].Malformed()))
	assert.Equal(t, "null", string(d.Recommendations[2].Malformed()))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"recommendations": [{"action": "Pilot agents", "priority": "High"}, "just text", null],
		"key_considerations": ["cost"],
		"risk_mitigation": null
	}`, string(out))
}

func TestFinalReport_MarshalFailed(t *testing.T) {
	r := FinalReport{
		Query:     "q",
		Status:    StatusFailed,
		Error:     "Orchestration failed: boom",
		KeyTrends: []string{"ignored"},
	}
	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Orchestration failed: boom", "query": "q", "status": "failed"}`, string(out))
}

func TestFinalReport_MarshalEmptyLists(t *testing.T) {
	r := FinalReport{Query: "q", Status: StatusCompleted}
	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": "q",
		"summary": "",
		"key_trends": [],
		"business_impact": {},
		"recommended_actions": [],
		"status": "completed"
	}`, string(out))

	var back FinalReport
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, StatusCompleted, back.Status)
}
