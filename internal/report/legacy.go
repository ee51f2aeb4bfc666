package report

import "github.com/psychograph/psychograph/internal/analyzer"

// The dashboard predates the bidirectional analyses and still reads a
// patient-only shape. These projections keep it working; the full data
// rides alongside under _both_sides.

// LegacyDefense is the patient-only defense mechanism projection.
type LegacyDefense struct {
	DefenseMechanisms  map[string]analyzer.MechanismCount `json:"defense_mechanisms"`
	DominantMechanism  string                             `json:"dominant_mechanism"`
	TotalDefenseEvents int                                `json:"total_defense_events"`
}

// LegacyKPIs is the patient-only KPI projection.
type LegacyKPIs struct {
	KPIs               map[string]analyzer.KPIScore `json:"kpis"`
	FlagReason         *string                      `json:"flag_reason"`
	OverallHealthScore float64                      `json:"overall_health_score"`
	FlagForReview      bool                         `json:"flag_for_review"`
}

// LegacySummary is the patient-only qualitative projection.
type LegacySummary struct {
	RelationshipDynamic string   `json:"relationship_dynamic"`
	ClinicalNotes       string   `json:"clinical_notes"`
	BehavioralPatterns  []string `json:"behavioral_patterns"`
	RedFlags            []string `json:"red_flags"`
	Strengths           []string `json:"strengths"`
	TherapySuggestions  []string `json:"therapy_suggestions"`
}

func projectDefense(d *analyzer.DefenseAnalysis) *LegacyDefense {
	if d == nil {
		return nil
	}
	dominant := d.PatientDominant
	if dominant == "" {
		dominant = "none"
	}
	return &LegacyDefense{
		DefenseMechanisms:  d.PatientMechanisms,
		TotalDefenseEvents: d.PatientTotal,
		DominantMechanism:  dominant,
	}
}

func projectKPIs(k *analyzer.KPIAnalysis) *LegacyKPIs {
	if k == nil {
		return nil
	}
	return &LegacyKPIs{
		KPIs:               k.PatientKPIs,
		OverallHealthScore: k.PatientOverallScore,
		FlagForReview:      k.FlagForReview,
		FlagReason:         k.FlagReason,
	}
}

func projectSummary(s *analyzer.Summary) *LegacySummary {
	if s == nil {
		return nil
	}
	return &LegacySummary{
		RelationshipDynamic: s.RelationshipDynamic,
		BehavioralPatterns:  s.PatientPatterns,
		RedFlags:            s.PatientRedFlags,
		Strengths:           s.PatientStrengths,
		TherapySuggestions:  s.TherapySuggestions,
		ClinicalNotes:       s.ClinicalNotes,
	}
}
