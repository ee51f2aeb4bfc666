package diagnostic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychograph/psychograph/internal/criteria"
	"github.com/psychograph/psychograph/internal/llm"
)

// mockClient returns a canned response and records the last request.
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

func TestAIScorerAssess(t *testing.T) {
	client := &mockClient{
		response: "```json\n" + `{
  "criteria_met": {
    "A1": {"is_met": true, "evidence": "I feel so sad", "rationale": "direct statement"},
    "A2": {"is_met": true, "evidence": "worried all the time", "rationale": "explicit worry"},
    "A3": {"is_met": false, "evidence": "", "rationale": "no sleep complaints"}
  },
  "total_criteria_met": 2,
  "meets_threshold": true,
  "confidence": "High",
  "clinical_notes": "Pattern consistent with the presentation."
}` + "\n```",
	}

	scorer := NewAIScorer(client, nil)
	assessment, err := scorer.Assess(context.Background(), testCondition(), "[PATIENT]: I feel so sad")
	require.NoError(t, err)

	assert.Equal(t, "Test Disorder", assessment.DisorderName)
	assert.Equal(t, 2, assessment.CriteriaMet)
	assert.Equal(t, 4, assessment.TotalCriteria)
	// Derivation fields are recomputed locally, not trusted from the
	// model: 2 of 4 is 50%, Low confidence, threshold 2 met.
	assert.Equal(t, 50.0, assessment.PercentageMet)
	assert.True(t, assessment.MeetsThreshold)
	assert.Equal(t, ConfidenceLow, assessment.ConfidenceLevel)
	assert.Equal(t, "Pattern consistent with the presentation.", assessment.Interpretation)

	a1 := assessment.CriteriaBreakdown["A1"]
	require.Len(t, a1.Evidence, 1)
	assert.Equal(t, "I feel so sad", a1.Evidence[0].Message)
	assert.Equal(t, "AI analysis", a1.Evidence[0].IndicatorMatched)

	// Unmentioned criteria default to not met.
	assert.False(t, assessment.CriteriaBreakdown["A4"].IsMet)
}

func TestAIScorerRequestError(t *testing.T) {
	client := &mockClient{err: errors.New("rate limited")}
	scorer := NewAIScorer(client, nil)

	_, err := scorer.Assess(context.Background(), testCondition(), "[PATIENT]: hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Test Disorder")
}

func TestAIScorerMalformedResponse(t *testing.T) {
	client := &mockClient{response: "I cannot analyze this conversation."}
	scorer := NewAIScorer(client, nil)

	_, err := scorer.Assess(context.Background(), testCondition(), "[PATIENT]: hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestAIScorerPromptTruncation(t *testing.T) {
	client := &mockClient{response: `{"criteria_met": {}}`}
	scorer := NewAIScorer(client, nil)

	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'x'
	}

	_, err := scorer.Assess(context.Background(), testCondition(), string(long))
	require.NoError(t, err)
	assert.Less(t, len(client.lastReq.Prompt), 6000)
}

func TestAIScorerPrefilter(t *testing.T) {
	scorer := NewAIScorer(&mockClient{}, nil)

	priority := criteria.Condition{Name: "Major Depressive Disorder"}
	other := criteria.Condition{Name: "Narcissistic Personality Disorder"}

	tests := []struct {
		name       string
		cond       criteria.Condition
		transcript string
		expected   bool
	}{
		{"priority condition always assessed", priority, "[PATIENT]: nice weather", true},
		{"non-priority without triggers skipped", other, "[PATIENT]: nice weather", false},
		{"non-priority with trigger word assessed", other, "[PATIENT]: I'm scared of storms", true},
		{"trigger matching is case-insensitive", other, "[PATIENT]: SO WORRIED", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorer.ShouldAssess(tt.cond, tt.transcript))
		})
	}
}
