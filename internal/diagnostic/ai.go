package diagnostic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/psychograph/psychograph/internal/criteria"
	"github.com/psychograph/psychograph/internal/llm"
)

// maxPromptTranscript bounds how much transcript is embedded in the
// per-condition prompt.
const maxPromptTranscript = 4000

// AIScorer is the semantic Scorer variant: it asks an LLM whether each
// criterion is met instead of substring matching. Output conforms to
// the same ConditionAssessment shape, with percentage, threshold and
// confidence recomputed locally from the per-criterion verdicts.
type AIScorer struct {
	client llm.Client
	logger *slog.Logger
}

// NewAIScorer creates an LLM-backed scorer.
func NewAIScorer(client llm.Client, logger *slog.Logger) *AIScorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIScorer{client: client, logger: logger}
}

// ShouldAssess implements the prefilter: non-priority conditions are
// skipped entirely when the transcript carries no affect-related
// trigger words. This is a cost-control heuristic that trades recall
// for fewer API calls.
func (s *AIScorer) ShouldAssess(cond criteria.Condition, transcriptText string) bool {
	if criteria.PriorityConditions[cond.Name] {
		return true
	}
	lower := strings.ToLower(transcriptText)
	for _, word := range criteria.AffectTriggers {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// aiCriterionVerdict is the model's judgment for one criterion.
type aiCriterionVerdict struct {
	IsMet     bool   `json:"is_met"`
	Evidence  string `json:"evidence"`
	Rationale string `json:"rationale"`
}

// aiResponse is the JSON shape the model is asked to return.
type aiResponse struct {
	CriteriaMet      map[string]aiCriterionVerdict `json:"criteria_met"`
	TotalCriteriaMet int                           `json:"total_criteria_met"`
	MeetsThreshold   bool                          `json:"meets_threshold"`
	Confidence       string                        `json:"confidence"`
	ClinicalNotes    string                        `json:"clinical_notes"`
}

// Assess asks the model which criteria the transcript satisfies and
// rebuilds the assessment with the shared derivation formulas.
func (s *AIScorer) Assess(ctx context.Context, cond criteria.Condition, transcriptText string) (ConditionAssessment, error) {
	prompt := s.buildPrompt(cond, transcriptText)

	raw, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: 2000,
	})
	if err != nil {
		return ConditionAssessment{}, fmt.Errorf("assessment request for %s failed: %w", cond.Name, err)
	}

	var parsed aiResponse
	if err := json.Unmarshal([]byte(llm.CleanMarkdownWrapper(raw)), &parsed); err != nil {
		return ConditionAssessment{}, fmt.Errorf("failed to parse assessment response for %s: %w", cond.Name, err)
	}

	assessment := ConditionAssessment{
		DisorderName:      cond.Name,
		DSM5Page:          cond.DSMPage,
		PDFPage:           cond.PDFPage,
		Section:           cond.Section,
		TotalCriteria:     len(cond.Criteria),
		CriteriaRequired:  cond.Required,
		CriteriaBreakdown: make(map[string]CriterionAssessment, len(cond.Criteria)),
		DurationNote:      durationNote(cond),
	}

	// Walk the condition's own criteria order so breakdown and pooled
	// evidence are deterministic regardless of response key order.
	for _, criterion := range cond.Criteria {
		verdict, ok := parsed.CriteriaMet[criterion.ID]
		result := CriterionAssessment{
			CriterionText: criterion.Text,
			IsMet:         ok && verdict.IsMet,
		}
		if ok && verdict.Evidence != "" {
			item := Evidence{
				Message:          verdict.Evidence,
				IndicatorMatched: "AI analysis",
				CriterionID:      criterion.ID,
			}
			result.Evidence = []Evidence{item}
			result.EvidenceCount = 1
			if result.IsMet && len(assessment.KeyEvidence) < maxKeyEvidence {
				assessment.KeyEvidence = append(assessment.KeyEvidence, item)
			}
		}
		if result.IsMet {
			assessment.CriteriaMet++
		}
		assessment.CriteriaBreakdown[criterion.ID] = result
	}

	derive(&assessment, parsed.ClinicalNotes)
	return assessment, nil
}

// buildPrompt renders the per-condition judgment prompt.
func (s *AIScorer) buildPrompt(cond criteria.Condition, transcriptText string) string {
	if len(transcriptText) > maxPromptTranscript {
		transcriptText = transcriptText[:maxPromptTranscript]
	}

	var criteriaText strings.Builder
	for _, criterion := range cond.Criteria {
		fmt.Fprintf(&criteriaText, "\n%s: %s\n", criterion.ID, criterion.Text)
	}

	var duration string
	if cond.Duration != "" {
		duration = fmt.Sprintf("DURATION: %s\n", cond.Duration)
	}

	return fmt.Sprintf(`You are a clinical psychologist analyzing a conversation for signs of %s.

CONVERSATION (Patient's messages marked with [PATIENT]):
%s

DIAGNOSTIC CRITERIA FOR %s:
%s

REQUIRED: %d out of %d criteria must be met.
%s
TASK: Determine which criteria are met based on the conversation. Return ONLY valid JSON:

{
  "criteria_met": {
    "A1": {
      "is_met": true,
      "evidence": "Direct quote from conversation showing this criterion" or null,
      "rationale": "Brief explanation of why this is/isn't met"
    }
  },
  "total_criteria_met": 5,
  "meets_threshold": true,
  "confidence": "High/Moderate/Low",
  "clinical_notes": "Brief summary of why this diagnosis does/doesn't fit"
}

BE STRICT: Only mark criteria as met if there's clear evidence in the conversation.`,
		cond.Name, transcriptText, cond.Name, criteriaText.String(),
		cond.Required, len(cond.Criteria), duration)
}
