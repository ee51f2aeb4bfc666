package diagnostic

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychograph/psychograph/internal/criteria"
)

func testCondition() criteria.Condition {
	return criteria.Condition{
		Name:     "Test Disorder",
		Section:  "Test Section",
		DSMPage:  100,
		PDFPage:  142,
		Required: 2,
		Criteria: []criteria.Criterion{
			{ID: "A1", Text: "Persistent sadness", Indicators: []string{"sad", "hopeless"}},
			{ID: "A2", Text: "Excessive worry", Indicators: []string{"worried", "anxious"}},
			{ID: "A3", Text: "Sleep disturbance", Indicators: []string{"can't sleep", "insomnia"}},
			{ID: "A4", Text: "Fatigue", Indicators: []string{"exhausted", "no energy"}},
		},
	}
}

func TestMatcherCountsMetCriteria(t *testing.T) {
	matcher := NewMatcher(nil)
	transcript := strings.Join([]string{
		"[PATIENT]: I feel so sad lately",
		"[OTHER]: that sounds hard",
		"[PATIENT]: I'm worried about everything",
	}, "\n")

	assessment, err := matcher.Assess(context.Background(), testCondition(), transcript)
	require.NoError(t, err)

	assert.Equal(t, "Test Disorder", assessment.DisorderName)
	assert.Equal(t, 2, assessment.CriteriaMet)
	assert.Equal(t, 4, assessment.TotalCriteria)
	assert.Equal(t, 50.0, assessment.PercentageMet)
	assert.True(t, assessment.MeetsThreshold)
	assert.True(t, assessment.CriteriaBreakdown["A1"].IsMet)
	assert.True(t, assessment.CriteriaBreakdown["A2"].IsMet)
	assert.False(t, assessment.CriteriaBreakdown["A3"].IsMet)
	assert.False(t, assessment.CriteriaBreakdown["A4"].IsMet)
}

func TestMatcherIgnoresOtherSpeaker(t *testing.T) {
	matcher := NewMatcher(nil)
	transcript := strings.Join([]string{
		"[OTHER]: I'm so sad and worried and exhausted",
		"[PATIENT]: glad you told me",
	}, "\n")

	assessment, err := matcher.Assess(context.Background(), testCondition(), transcript)
	require.NoError(t, err)

	assert.Equal(t, 0, assessment.CriteriaMet)
	assert.False(t, assessment.MeetsThreshold)
	assert.Empty(t, assessment.KeyEvidence)
}

func TestMatcherIsCaseInsensitive(t *testing.T) {
	matcher := NewMatcher(nil)
	transcript := "[PATIENT]: SO SAD today"

	assessment, err := matcher.Assess(context.Background(), testCondition(), transcript)
	require.NoError(t, err)
	assert.True(t, assessment.CriteriaBreakdown["A1"].IsMet)
}

func TestMatcherMatchesInsideWords(t *testing.T) {
	// Substring matching has no word boundaries: "sad" inside
	// "sadistic" still counts.
	matcher := NewMatcher(nil)
	transcript := "[PATIENT]: that movie villain was sadistic"

	assessment, err := matcher.Assess(context.Background(), testCondition(), transcript)
	require.NoError(t, err)
	assert.True(t, assessment.CriteriaBreakdown["A1"].IsMet)
}

func TestMatcherEvidenceCaps(t *testing.T) {
	matcher := NewMatcher(nil)

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("[PATIENT]: sad again, day %d", i))
	}
	transcript := strings.Join(lines, "\n")

	assessment, err := matcher.Assess(context.Background(), testCondition(), transcript)
	require.NoError(t, err)

	a1 := assessment.CriteriaBreakdown["A1"]
	assert.Len(t, a1.Evidence, 3)
	assert.Equal(t, 10, a1.EvidenceCount)
	// Only the first two matches of a met criterion reach the pool.
	assert.Len(t, assessment.KeyEvidence, 2)
	assert.Equal(t, "sad again, day 0", assessment.KeyEvidence[0].Message)
	assert.Equal(t, "sad again, day 1", assessment.KeyEvidence[1].Message)
}

func TestMatcherKeyEvidencePoolCap(t *testing.T) {
	matcher := NewMatcher(nil)
	transcript := strings.Join([]string{
		"[PATIENT]: sad and hopeless",
		"[PATIENT]: still sad",
		"[PATIENT]: worried sick",
		"[PATIENT]: anxious all day",
		"[PATIENT]: can't sleep at night",
		"[PATIENT]: insomnia again",
		"[PATIENT]: exhausted constantly",
	}, "\n")

	assessment, err := matcher.Assess(context.Background(), testCondition(), transcript)
	require.NoError(t, err)

	assert.Equal(t, 4, assessment.CriteriaMet)
	assert.Len(t, assessment.KeyEvidence, 5)
}

func TestMatcherThresholdAboveTotal(t *testing.T) {
	// A condition requiring more criteria than exist can never meet
	// threshold, but must not error.
	cond := testCondition()
	cond.Required = 10

	matcher := NewMatcher(nil)
	transcript := "[PATIENT]: sad, worried, exhausted, insomnia"

	assessment, err := matcher.Assess(context.Background(), cond, transcript)
	require.NoError(t, err)
	assert.Equal(t, 4, assessment.CriteriaMet)
	assert.False(t, assessment.MeetsThreshold)
}

func TestMatcherNoCriteria(t *testing.T) {
	cond := criteria.Condition{Name: "Empty", Required: 1}
	matcher := NewMatcher(nil)

	assessment, err := matcher.Assess(context.Background(), cond, "[PATIENT]: hello")
	require.NoError(t, err)
	assert.Equal(t, 0, assessment.TotalCriteria)
	assert.Equal(t, 0.0, assessment.PercentageMet)
	assert.False(t, assessment.MeetsThreshold)
}

func TestMatcherDurationNote(t *testing.T) {
	matcher := NewMatcher(nil)

	cond := testCondition()
	assessment, err := matcher.Assess(context.Background(), cond, "")
	require.NoError(t, err)
	assert.Equal(t, "Not specified", assessment.DurationNote)

	cond.Duration = "6 months"
	assessment, err = matcher.Assess(context.Background(), cond, "")
	require.NoError(t, err)
	assert.Equal(t, "6 months", assessment.DurationNote)
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		expected   Confidence
		percentage float64
	}{
		{ConfidenceHigh, 100},
		{ConfidenceHigh, 80.0},
		{ConfidenceModerate, 79.9},
		{ConfidenceModerate, 60.0},
		{ConfidenceLow, 59.9},
		{ConfidenceLow, 40.0},
		{ConfidenceVeryLow, 39.9},
		{ConfidenceVeryLow, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.percentage), func(t *testing.T) {
			assert.Equal(t, tt.expected, ConfidenceFor(tt.percentage))
		})
	}
}

func TestPercentageRounding(t *testing.T) {
	// 1 of 9 criteria is 11.1%, 2 of 9 is 22.2%.
	cond := criteria.Condition{
		Name:     "Nine",
		Required: 5,
	}
	for i := 0; i < 9; i++ {
		cond.Criteria = append(cond.Criteria, criteria.Criterion{
			ID:         fmt.Sprintf("A%d", i+1),
			Text:       fmt.Sprintf("criterion %d", i+1),
			Indicators: []string{fmt.Sprintf("indicator%d", i+1)},
		})
	}

	matcher := NewMatcher(nil)
	assessment, err := matcher.Assess(context.Background(), cond, "[PATIENT]: indicator1 here")
	require.NoError(t, err)
	assert.Equal(t, 11.1, assessment.PercentageMet)

	assessment, err = matcher.Assess(context.Background(), cond, "[PATIENT]: indicator1 and indicator2")
	require.NoError(t, err)
	assert.Equal(t, 22.2, assessment.PercentageMet)
}

func TestMatcherAgainstBuiltinDatabase(t *testing.T) {
	// "worried" is an indicator for GAD criterion A in the shipped
	// database.
	cond, ok := criteria.Find("Generalized Anxiety Disorder")
	require.True(t, ok)

	matcher := NewMatcher(nil)
	transcript := "[PATIENT]: I'm so worried about everything lately"

	assessment, err := matcher.Assess(context.Background(), cond, transcript)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, assessment.CriteriaMet, 1)
	require.NotEmpty(t, assessment.KeyEvidence)
	assert.Equal(t, "I'm so worried about everything lately", assessment.KeyEvidence[0].Message)
}
