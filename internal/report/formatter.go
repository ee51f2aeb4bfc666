package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/psychograph/psychograph/internal/cli"
	"github.com/psychograph/psychograph/internal/diagnostic"
)

// Formatter renders an AnalysisResult for the terminal.
type Formatter struct{}

// NewFormatter creates a terminal formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatSummary creates a high-level summary of the run.
func (f *Formatter) FormatSummary(result *AnalysisResult) string {
	if result == nil {
		return cli.ErrorStyle.Render("No results available")
	}

	var sections []string
	sections = append(sections, f.formatHeader(result))

	keys := make([]string, 0, len(result.Conversations))
	for key := range result.Conversations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sections = append(sections, f.formatConversation(key, result.Conversations[key]))
	}

	if disclaimer := f.formatDisclaimer(result); disclaimer != "" {
		sections = append(sections, disclaimer)
	}

	return strings.Join(sections, "\n\n")
}

func (f *Formatter) formatHeader(result *AnalysisResult) string {
	title := cli.FormatTitle("Conversation Analysis")

	patient := cli.SubtitleStyle.Render(fmt.Sprintf("Patient: %s · %d conversation(s)",
		result.PatientName, len(result.Conversations)))

	generated := cli.SubtleStyle.Render(fmt.Sprintf("Run %s · %s",
		result.RunID, result.GeneratedAt.Format(time.RFC3339)))

	return fmt.Sprintf("%s\n%s\n%s", title, patient, generated)
}

func (f *Formatter) formatConversation(label string, conv *Conversation) string {
	header := cli.BoldStyle.Render(label)

	if conv.Error != "" {
		return header + "\n" + cli.FormatError("analysis failed: "+conv.Error)
	}

	var lines []string
	lines = append(lines, cli.SubtleStyle.Render(fmt.Sprintf("%d messages", conv.MessageCount)))

	if conv.KPIs != nil {
		lines = append(lines, f.formatHealthScore(conv.KPIs))
	}
	if conv.DefenseMechanisms != nil && conv.DefenseMechanisms.DominantMechanism != "none" {
		lines = append(lines, cli.InfoStyle.Render(
			fmt.Sprintf("Dominant defense: %s (%d events)",
				conv.DefenseMechanisms.DominantMechanism,
				conv.DefenseMechanisms.TotalDefenseEvents)))
	}
	if conv.Diagnosis != nil {
		lines = append(lines, f.formatDiagnosis(conv.Diagnosis))
	}

	return header + "\n" + strings.Join(lines, "\n")
}

func (f *Formatter) formatHealthScore(kpis *LegacyKPIs) string {
	score := kpis.OverallHealthScore

	var style lipgloss.Style
	switch {
	case score >= 7:
		style = cli.SuccessStyle
	case score >= 4:
		style = cli.WarningStyle
	default:
		style = cli.ErrorStyle
	}

	barWidth := 20
	filled := int(float64(barWidth) * score / 10)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	line := style.Render(fmt.Sprintf("Health score: %.1f/10 %s", score, bar))
	if kpis.FlagForReview {
		reason := "flagged for review"
		if kpis.FlagReason != nil && *kpis.FlagReason != "" {
			reason = *kpis.FlagReason
		}
		line += "\n" + cli.FormatWarning(reason)
	}
	return line
}

func (f *Formatter) formatDiagnosis(diag *DiagnosisResult) string {
	if diag.Error != "" {
		return cli.FormatWarning("diagnostic assessment failed: " + diag.Error)
	}
	if diag.Report == nil || diag.Report.PrimaryDiagnosis == nil {
		return cli.SubtleStyle.Render("No condition met diagnostic threshold")
	}

	primary := diag.Report.PrimaryDiagnosis
	return cli.InfoStyle.Render(fmt.Sprintf("Primary pattern: %s (%.1f%% criteria, %s confidence)",
		primary.DisorderName,
		primary.PercentageMet,
		primary.ConfidenceLevel))
}

func (f *Formatter) formatDisclaimer(result *AnalysisResult) string {
	for _, conv := range result.Conversations {
		if conv.Diagnosis != nil && conv.Diagnosis.Report != nil {
			return cli.SubtleStyle.Render(diagnostic.Disclaimer)
		}
	}
	return ""
}
