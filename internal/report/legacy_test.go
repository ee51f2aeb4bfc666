package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychograph/psychograph/internal/analyzer"
)

func TestProjectDefense(t *testing.T) {
	full := &analyzer.DefenseAnalysis{
		PatientMechanisms: map[string]analyzer.MechanismCount{
			"denial":     {Count: 3},
			"projection": {Count: 1},
		},
		OtherMechanisms: map[string]analyzer.MechanismCount{
			"splitting": {Count: 5},
		},
		PatientTotal:    4,
		OtherTotal:      5,
		PatientDominant: "denial",
		OtherDominant:   "splitting",
	}

	legacy := projectDefense(full)
	require.NotNil(t, legacy)
	assert.Equal(t, full.PatientMechanisms, legacy.DefenseMechanisms)
	assert.Equal(t, 4, legacy.TotalDefenseEvents)
	assert.Equal(t, "denial", legacy.DominantMechanism)

	assert.Nil(t, projectDefense(nil))
}

func TestProjectDefenseDefaultsDominant(t *testing.T) {
	legacy := projectDefense(&analyzer.DefenseAnalysis{})
	require.NotNil(t, legacy)
	assert.Equal(t, "none", legacy.DominantMechanism)
}

func TestProjectKPIs(t *testing.T) {
	reason := "volatile exchanges"
	full := &analyzer.KPIAnalysis{
		PatientKPIs: map[string]analyzer.KPIScore{
			"empathy_shown": {Score: 2, Rationale: "rarely acknowledges"},
		},
		OtherKPIs: map[string]analyzer.KPIScore{
			"empathy_shown": {Score: 8, Rationale: "checks in often"},
		},
		PatientOverallScore: 3.5,
		OtherOverallScore:   7.0,
		FlagForReview:       true,
		FlagReason:          &reason,
	}

	legacy := projectKPIs(full)
	require.NotNil(t, legacy)
	assert.Equal(t, full.PatientKPIs, legacy.KPIs)
	assert.Equal(t, 3.5, legacy.OverallHealthScore)
	assert.True(t, legacy.FlagForReview)
	require.NotNil(t, legacy.FlagReason)
	assert.Equal(t, reason, *legacy.FlagReason)

	assert.Nil(t, projectKPIs(nil))
}

func TestProjectSummary(t *testing.T) {
	full := &analyzer.Summary{
		RelationshipDynamic: "avoidant pairing",
		PatientPatterns:     []string{"deflects"},
		OtherPatterns:       []string{"pursues"},
		PatientRedFlags:     []string{"minimizes distress"},
		OtherRedFlags:       []string{"pushes boundaries"},
		PatientStrengths:    []string{"humor"},
		OtherStrengths:      []string{"persistence"},
		TherapySuggestions:  []string{"explore avoidance"},
		ClinicalNotes:       "classic pursue-withdraw loop",
	}

	legacy := projectSummary(full)
	require.NotNil(t, legacy)
	assert.Equal(t, "avoidant pairing", legacy.RelationshipDynamic)
	assert.Equal(t, []string{"deflects"}, legacy.BehavioralPatterns)
	assert.Equal(t, []string{"minimizes distress"}, legacy.RedFlags)
	assert.Equal(t, []string{"humor"}, legacy.Strengths)
	assert.Equal(t, []string{"explore avoidance"}, legacy.TherapySuggestions)
	assert.Equal(t, "classic pursue-withdraw loop", legacy.ClinicalNotes)

	assert.Nil(t, projectSummary(nil))
}

func TestConversationJSONShape(t *testing.T) {
	conv := &Conversation{
		MessageCount:       3,
		DefenseMechanisms:  projectDefense(&analyzer.DefenseAnalysis{PatientDominant: "denial"}),
		KPIs:               projectKPIs(&analyzer.KPIAnalysis{}),
		QualitativeSummary: projectSummary(&analyzer.Summary{}),
		BothSides:          &BothSides{},
	}

	data, err := json.Marshal(conv)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "message_count")
	assert.Contains(t, decoded, "defense_mechanisms")
	assert.Contains(t, decoded, "kpis")
	assert.Contains(t, decoded, "qualitative_summary")
	assert.Contains(t, decoded, "_both_sides")
	assert.NotContains(t, decoded, "error")
}

func TestFailedConversationJSONShape(t *testing.T) {
	conv := &Conversation{Error: "api timeout"}

	data, err := json.Marshal(conv)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{"error": "api timeout"}, decoded)
}

func TestDiagnosisErrorJSONShape(t *testing.T) {
	diag := &DiagnosisResult{Error: "model unavailable"}

	data, err := json.Marshal(diag)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{"error": "model unavailable"}, decoded)
}
