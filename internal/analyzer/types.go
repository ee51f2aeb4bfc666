// Package analyzer runs the LLM-backed conversation analyses: defense
// mechanisms, communication KPIs and the qualitative summary. Each
// analysis scores both sides of the conversation.
package analyzer

// DefenseMechanisms are the psychological defense mechanisms the model
// is asked to count.
var DefenseMechanisms = []string{
	"denial", "projection", "rationalization", "deflection",
	"intellectualization", "repression", "displacement",
	"passive aggression", "splitting", "minimization",
}

// MechanismCount is one defense mechanism's tally with a quoted example.
type MechanismCount struct {
	Example *string `json:"example"`
	Count   int     `json:"count"`
}

// DefenseAnalysis scores defense mechanism use on both sides of a
// conversation.
type DefenseAnalysis struct {
	PatientMechanisms  map[string]MechanismCount `json:"patient_defense_mechanisms"`
	OtherMechanisms    map[string]MechanismCount `json:"other_defense_mechanisms"`
	PatientDominant    string                    `json:"patient_dominant"`
	OtherDominant      string                    `json:"other_dominant"`
	InteractionPattern string                    `json:"interaction_pattern"`
	PatientTotal       int                       `json:"patient_total"`
	OtherTotal         int                       `json:"other_total"`
}

// KPIScore is one communication KPI scored 0-10 with a rationale.
type KPIScore struct {
	Rationale string  `json:"rationale"`
	Score     float64 `json:"score"`
}

// KPIAnalysis scores communication KPIs for both participants.
type KPIAnalysis struct {
	PatientKPIs             map[string]KPIScore `json:"patient_kpis"`
	OtherKPIs               map[string]KPIScore `json:"other_kpis"`
	FlagReason              *string             `json:"flag_reason"`
	DynamicAnalysis         string              `json:"dynamic_analysis"`
	PatientOverallScore     float64             `json:"patient_overall_score"`
	OtherOverallScore       float64             `json:"other_overall_score"`
	RelationshipHealthScore float64             `json:"relationship_health_score"`
	FlagForReview           bool                `json:"flag_for_review"`
}

// Summary holds the qualitative case notes for both sides.
type Summary struct {
	RelationshipDynamic string   `json:"relationship_dynamic"`
	ClinicalNotes       string   `json:"clinical_notes"`
	PatientPatterns     []string `json:"patient_patterns"`
	OtherPatterns       []string `json:"other_patterns"`
	InteractionPatterns []string `json:"interaction_patterns"`
	PatientRedFlags     []string `json:"patient_red_flags"`
	OtherRedFlags       []string `json:"other_red_flags"`
	PatientStrengths    []string `json:"patient_strengths"`
	OtherStrengths      []string `json:"other_strengths"`
	TherapySuggestions  []string `json:"therapy_suggestions"`
}
