package diagnostic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/psychograph/psychograph/internal/criteria"
	"github.com/psychograph/psychograph/internal/transcript"
)

// Evidence retention caps. Each criterion keeps its first three
// matches; the first two of a met criterion are folded into the
// condition-level pool, which keeps five in total.
const (
	maxEvidencePerCriterion = 3
	maxPooledPerCriterion   = 2
	maxKeyEvidence          = 5
)

// Matcher is the rule-based Scorer: it counts case-insensitive
// substring occurrences of each criterion's indicator phrases in the
// subject's transcript lines. Matching is deliberately not
// word-boundary aware ("hot" matches inside "shot"); this mirrors the
// documented behavior and is a known source of false positives.
type Matcher struct {
	logger *slog.Logger
}

// NewMatcher creates a rule-based scorer.
func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{logger: logger}
}

// Assess scans the subject's lines for indicator phrases and tallies
// which criteria are met. A criterion is met when at least one of its
// indicators occurs; one line may serve as evidence for any number of
// criteria and phrases.
func (m *Matcher) Assess(_ context.Context, cond criteria.Condition, transcriptText string) (ConditionAssessment, error) {
	patientLines := transcript.PatientLines(transcriptText)

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

	if len(cond.Criteria) == 0 {
		m.logger.Warn("Condition has no criteria defined, treating as never met",
			"condition", cond.Name)
		derive(&assessment, "")
		return assessment, nil
	}

	for _, criterion := range cond.Criteria {
		found := matchCriterion(criterion, patientLines)

		result := CriterionAssessment{
			CriterionText: criterion.Text,
			IsMet:         len(found) > 0,
			EvidenceCount: len(found),
		}
		if len(found) > maxEvidencePerCriterion {
			result.Evidence = found[:maxEvidencePerCriterion]
		} else {
			result.Evidence = found
		}
		assessment.CriteriaBreakdown[criterion.ID] = result

		if result.IsMet {
			assessment.CriteriaMet++
			pooled := found
			if len(pooled) > maxPooledPerCriterion {
				pooled = pooled[:maxPooledPerCriterion]
			}
			assessment.KeyEvidence = append(assessment.KeyEvidence, pooled...)
		}
	}

	if len(assessment.KeyEvidence) > maxKeyEvidence {
		assessment.KeyEvidence = assessment.KeyEvidence[:maxKeyEvidence]
	}

	derive(&assessment, "")
	return assessment, nil
}

// matchCriterion collects every (line, phrase) match for one criterion,
// in line-scan order. Matches are not deduplicated by phrase.
func matchCriterion(criterion criteria.Criterion, patientLines []string) []Evidence {
	var found []Evidence
	for _, line := range patientLines {
		lower := strings.ToLower(line)
		for _, indicator := range criterion.Indicators {
			if strings.Contains(lower, strings.ToLower(indicator)) {
				found = append(found, Evidence{
					Message:          stripPatientLabel(line),
					IndicatorMatched: indicator,
					CriterionID:      criterion.ID,
				})
			}
		}
	}
	return found
}

// stripPatientLabel removes the speaker label from a transcript line.
func stripPatientLabel(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, transcript.PatientLabel+":"))
}
