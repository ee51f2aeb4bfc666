package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychograph/psychograph/internal/llm"
)

type mockClient struct {
	response string
	err      error
	lastReq  llm.Request
}

func (m *mockClient) Complete(_ context.Context, req llm.Request) (string, error) {
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestNewLLMService(t *testing.T) {
	svc, err := NewLLMService(&mockClient{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
	assert.Len(t, svc.templates, 3)
	assert.Contains(t, svc.templates, "defense_mechanisms")
	assert.Contains(t, svc.templates, "kpis")
	assert.Contains(t, svc.templates, "qualitative_summary")
}

func TestNewLLMServiceRequiresClient(t *testing.T) {
	_, err := NewLLMService(nil, nil)
	require.Error(t, err)
}

func TestDefenseMechanismsAnalysis(t *testing.T) {
	client := &mockClient{
		response: "```json\n" + `{
  "patient_defense_mechanisms": {
    "denial": {"count": 2, "example": "I'm fine, nothing's wrong"}
  },
  "other_defense_mechanisms": {},
  "patient_total": 2,
  "other_total": 0,
  "patient_dominant": "denial",
  "other_dominant": "none",
  "interaction_pattern": "patient deflects, other pursues"
}` + "\n```",
	}

	svc, err := NewLLMService(client, nil)
	require.NoError(t, err)

	result, err := svc.DefenseMechanisms(context.Background(), "[PATIENT]: I'm fine", "Alex")
	require.NoError(t, err)

	assert.Equal(t, 2, result.PatientTotal)
	assert.Equal(t, "denial", result.PatientDominant)
	require.Contains(t, result.PatientMechanisms, "denial")
	assert.Equal(t, 2, result.PatientMechanisms["denial"].Count)
	require.NotNil(t, result.PatientMechanisms["denial"].Example)
	assert.Equal(t, "I'm fine, nothing's wrong", *result.PatientMechanisms["denial"].Example)

	// The prompt embeds the participant, the transcript and the
	// mechanism list.
	assert.Contains(t, client.lastReq.Prompt, "a patient and Alex")
	assert.Contains(t, client.lastReq.Prompt, "[PATIENT]: I'm fine")
	assert.Contains(t, client.lastReq.Prompt, "passive aggression")
	assert.Equal(t, 1000, client.lastReq.MaxTokens)
}

func TestKPIAnalysis(t *testing.T) {
	client := &mockClient{
		response: `{
  "patient_kpis": {
    "emotional_openness": {"score": 2.5, "rationale": "rarely shares feelings"}
  },
  "other_kpis": {},
  "patient_overall_score": 4,
  "other_overall_score": 6,
  "relationship_health_score": 5,
  "flag_for_review": true,
  "flag_reason": "consistent avoidance",
  "dynamic_analysis": "pursue-withdraw"
}`,
	}

	svc, err := NewLLMService(client, nil)
	require.NoError(t, err)

	result, err := svc.KPIs(context.Background(), "[PATIENT]: hi", "Alex")
	require.NoError(t, err)

	assert.Equal(t, 4.0, result.PatientOverallScore)
	assert.True(t, result.FlagForReview)
	require.NotNil(t, result.FlagReason)
	assert.Equal(t, "consistent avoidance", *result.FlagReason)
	assert.Equal(t, 2.5, result.PatientKPIs["emotional_openness"].Score)
}

func TestQualitativeSummaryAnalysis(t *testing.T) {
	client := &mockClient{
		response: `{
  "relationship_dynamic": "strained",
  "patient_patterns": ["deflects"],
  "other_patterns": ["pursues"],
  "interaction_patterns": ["escalation loop"],
  "patient_red_flags": [],
  "other_red_flags": [],
  "patient_strengths": ["humor"],
  "other_strengths": [],
  "therapy_suggestions": ["explore avoidance"],
  "clinical_notes": "brief narrative"
}`,
	}

	svc, err := NewLLMService(client, nil)
	require.NoError(t, err)

	result, err := svc.QualitativeSummary(context.Background(), "[PATIENT]: hi", "Alex")
	require.NoError(t, err)

	assert.Equal(t, "strained", result.RelationshipDynamic)
	assert.Equal(t, []string{"deflects"}, result.PatientPatterns)
	assert.Equal(t, "brief narrative", result.ClinicalNotes)
	assert.Equal(t, 1200, client.lastReq.MaxTokens)
	assert.Contains(t, client.lastReq.Prompt, "a patient and Alex")
}

func TestAnalysisClientError(t *testing.T) {
	client := &mockClient{err: errors.New("boom")}
	svc, err := NewLLMService(client, nil)
	require.NoError(t, err)

	_, err = svc.DefenseMechanisms(context.Background(), "x", "Alex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defense_mechanisms")
}

func TestAnalysisMalformedResponse(t *testing.T) {
	client := &mockClient{response: "sorry, I can't help with that"}
	svc, err := NewLLMService(client, nil)
	require.NoError(t, err)

	_, err = svc.KPIs(context.Background(), "x", "Alex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
