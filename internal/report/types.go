// Package report assembles per-conversation analyses into the final
// result document and renders it for the terminal or disk.
package report

import (
	"time"

	"github.com/psychograph/psychograph/internal/analyzer"
	"github.com/psychograph/psychograph/internal/diagnostic"
)

// AnalysisResult is the top-level output of a full export run.
type AnalysisResult struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	Conversations map[string]*Conversation `json:"conversations"`
	RunID         string                   `json:"run_id"`
	PatientName   string                   `json:"patient_name"`
}

// Conversation is one analyzed thread. When analysis fails, only Error
// is set and every other field is omitted.
type Conversation struct {
	DefenseMechanisms  *LegacyDefense   `json:"defense_mechanisms,omitempty"`
	KPIs               *LegacyKPIs      `json:"kpis,omitempty"`
	QualitativeSummary *LegacySummary   `json:"qualitative_summary,omitempty"`
	BothSides          *BothSides       `json:"_both_sides,omitempty"`
	Diagnosis          *DiagnosisResult `json:"dsm5_diagnosis,omitempty"`
	Error              string           `json:"error,omitempty"`
	MessageCount       int              `json:"message_count,omitempty"`
}

// BothSides carries the full bidirectional analyses alongside the
// patient-only projections consumed by the dashboard.
type BothSides struct {
	Defense *analyzer.DefenseAnalysis `json:"defense"`
	KPIs    *analyzer.KPIAnalysis     `json:"kpis"`
	Summary *analyzer.Summary         `json:"summary"`
}

// DiagnosisResult wraps a diagnostic report so that a failed assessment
// degrades to an inline error instead of losing the conversation.
type DiagnosisResult struct {
	*diagnostic.Report
	Error string `json:"error,omitempty"`
}
