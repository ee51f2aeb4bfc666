// Package diagnostic scores conversation transcripts against the
// criteria database and assembles ranked diagnostic reports.
package diagnostic

import (
	"context"
	"fmt"
	"math"

	"github.com/psychograph/psychograph/internal/criteria"
)

// Disclaimer is attached verbatim to every diagnostic report.
const Disclaimer = "AI-assisted screening tool. Clinical diagnosis requires comprehensive evaluation by licensed professional."

// Confidence expresses how much of a condition's checklist was matched.
type Confidence string

const (
	// ConfidenceHigh indicates 80% or more of criteria matched.
	ConfidenceHigh Confidence = "High"
	// ConfidenceModerate indicates 60% or more of criteria matched.
	ConfidenceModerate Confidence = "Moderate"
	// ConfidenceLow indicates 40% or more of criteria matched.
	ConfidenceLow Confidence = "Low"
	// ConfidenceVeryLow indicates less than 40% of criteria matched.
	ConfidenceVeryLow Confidence = "Very Low"
)

// ConfidenceFor maps a criteria-met percentage to its confidence tier.
// Bounds are inclusive: exactly 80.0 is High.
func ConfidenceFor(percentage float64) Confidence {
	switch {
	case percentage >= 80:
		return ConfidenceHigh
	case percentage >= 60:
		return ConfidenceModerate
	case percentage >= 40:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// Evidence is one matched line of subject text supporting a criterion.
type Evidence struct {
	Message          string `json:"message"`
	IndicatorMatched string `json:"indicator_matched"`
	CriterionID      string `json:"criterion_id"`
}

// CriterionAssessment is the per-criterion result. At most three
// evidence items are retained per criterion; EvidenceCount reflects the
// full tally.
type CriterionAssessment struct {
	CriterionText string     `json:"criterion_text"`
	IsMet         bool       `json:"is_met"`
	Evidence      []Evidence `json:"evidence"`
	EvidenceCount int        `json:"evidence_count"`
}

// ConditionAssessment is the outcome of scoring one condition against a
// transcript. The JSON field names match the report format the
// dashboard consumes.
type ConditionAssessment struct {
	DisorderName      string                         `json:"disorder_name"`
	DSM5Page          int                            `json:"dsm5_page"`
	PDFPage           int                            `json:"pdf_page"`
	Section           string                         `json:"section"`
	CriteriaMet       int                            `json:"criteria_met"`
	TotalCriteria     int                            `json:"total_criteria"`
	CriteriaRequired  int                            `json:"criteria_required"`
	PercentageMet     float64                        `json:"criteria_met_percentage"`
	MeetsThreshold    bool                           `json:"meets_diagnostic_threshold"`
	ConfidenceLevel   Confidence                     `json:"confidence_level"`
	CriteriaBreakdown map[string]CriterionAssessment `json:"criteria_breakdown"`
	KeyEvidence       []Evidence                     `json:"key_evidence"`
	DurationNote      string                         `json:"duration_note"`
	Interpretation    string                         `json:"clinical_interpretation"`
}

// Report ranks all condition assessments. PrimaryDiagnosis is the
// highest-ranked assessment that meets its own threshold, or nil when
// none qualifies.
type Report struct {
	PrimaryDiagnosis *ConditionAssessment  `json:"primary_diagnosis"`
	AllAssessments   []ConditionAssessment `json:"all_assessments"`
	Disclaimer       string                `json:"disclaimer"`
}

// Scorer decides which criteria of a condition a transcript satisfies.
// Implementations must fill every derivation field (percentage,
// threshold, confidence) with the shared formulas so downstream ranking
// is scorer-agnostic.
type Scorer interface {
	Assess(ctx context.Context, cond criteria.Condition, transcriptText string) (ConditionAssessment, error)
}

// roundPercentage rounds to one decimal place.
func roundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}

// derive fills the computed fields of an assessment from its criteria
// counts. The percentage divides by total criteria, not the required
// count, so a condition can meet its threshold well below 100%.
func derive(a *ConditionAssessment, notes string) {
	if a.TotalCriteria > 0 {
		a.PercentageMet = roundPercentage(float64(a.CriteriaMet) / float64(a.TotalCriteria) * 100)
	}
	a.MeetsThreshold = a.CriteriaMet >= a.CriteriaRequired
	a.ConfidenceLevel = ConfidenceFor(a.PercentageMet)

	if notes != "" {
		a.Interpretation = notes
		return
	}
	verdict := "Does not meet"
	if a.MeetsThreshold {
		verdict = "Meets"
	}
	a.Interpretation = fmt.Sprintf("%s diagnostic criteria (%d/%d criteria). %s confidence.",
		verdict, a.CriteriaMet, a.CriteriaRequired, a.ConfidenceLevel)
}

// durationNote normalizes a condition's duration metadata for display.
func durationNote(cond criteria.Condition) string {
	if cond.Duration == "" {
		return "Not specified"
	}
	return cond.Duration
}
