package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/psychograph/psychograph/internal/analyzer"
	"github.com/psychograph/psychograph/internal/diagnostic"
	"github.com/psychograph/psychograph/internal/export"
	"github.com/psychograph/psychograph/internal/transcript"
)

// Assembler runs every analysis over a set of conversation threads and
// compiles the final result document.
type Assembler struct {
	analyses      analyzer.Service
	diagnostician *diagnostic.Diagnostician
	logger        *slog.Logger
	progressOut   io.Writer
	maxLines      int
}

// AssemblerOptions configures an Assembler.
type AssemblerOptions struct {
	Logger *slog.Logger
	// ProgressOut enables a per-thread progress bar when non-nil.
	ProgressOut io.Writer
	// MaxLines caps the transcript passed to the analyses. Zero means
	// the default trim limit.
	MaxLines int
}

// NewAssembler creates an Assembler over the given analysis service and
// diagnostician.
func NewAssembler(analyses analyzer.Service, diagnostician *diagnostic.Diagnostician, opts AssemblerOptions) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = transcript.DefaultMaxLines
	}
	return &Assembler{
		analyses:      analyses,
		diagnostician: diagnostician,
		logger:        logger,
		progressOut:   opts.ProgressOut,
		maxLines:      maxLines,
	}
}

// Run analyzes every thread and returns the assembled result. A failed
// thread becomes an inline error entry; the run continues.
func (a *Assembler) Run(ctx context.Context, threads map[string]export.Thread) (*AnalysisResult, error) {
	if len(threads) == 0 {
		return nil, fmt.Errorf("no conversation threads to analyze")
	}

	keys := make([]string, 0, len(threads))
	for key := range threads {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	patientName := threads[keys[0]].PrimarySubject()
	a.logger.Info("patient identified", "patient", patientName, "threads", len(threads))

	result := &AnalysisResult{
		RunID:         uuid.New().String(),
		GeneratedAt:   time.Now().UTC(),
		PatientName:   patientName,
		Conversations: make(map[string]*Conversation, len(threads)),
	}

	bar := a.newProgressBar(len(keys))

	for _, key := range keys {
		// On cancellation return what was analyzed so far alongside the
		// context error, so an interrupted run still produces output.
		if err := ctx.Err(); err != nil {
			return result, err
		}

		thread := threads[key]
		label := thread.Label()

		conv, ok := a.analyzeThread(ctx, thread, label, patientName)
		if ok {
			result.Conversations[label] = conv
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return result, nil
}

// analyzeThread runs the three analyses plus the diagnostic assessment
// on one thread. The second return is false when the thread is skipped
// because the patient never wrote in it.
func (a *Assembler) analyzeThread(ctx context.Context, thread export.Thread, label, patientName string) (*Conversation, bool) {
	messages := transcript.ParseThread(thread, patientName)

	patientCount := 0
	for _, m := range messages {
		if m.IsPatient {
			patientCount++
		}
	}
	if patientCount == 0 {
		a.logger.Debug("skipping thread without patient messages", "thread", label)
		return nil, false
	}

	a.logger.Info("analyzing conversation",
		"thread", label,
		"messages", len(messages),
		"from_patient", patientCount,
	)

	text := transcript.Trim(transcript.Format(messages), a.maxLines)

	defense, err := a.analyses.DefenseMechanisms(ctx, text, label)
	if err != nil {
		return a.failedConversation(label, err), true
	}
	kpis, err := a.analyses.KPIs(ctx, text, label)
	if err != nil {
		return a.failedConversation(label, err), true
	}
	summary, err := a.analyses.QualitativeSummary(ctx, text, label)
	if err != nil {
		return a.failedConversation(label, err), true
	}

	conv := &Conversation{
		MessageCount:       len(messages),
		DefenseMechanisms:  projectDefense(defense),
		KPIs:               projectKPIs(kpis),
		QualitativeSummary: projectSummary(summary),
		BothSides: &BothSides{
			Defense: defense,
			KPIs:    kpis,
			Summary: summary,
		},
	}

	// A failed diagnostic assessment degrades to an inline error without
	// discarding the other analyses.
	if a.diagnostician != nil {
		diagReport, diagErr := a.diagnostician.Diagnose(ctx, text)
		if diagErr != nil {
			a.logger.Warn("diagnostic assessment failed", "thread", label, "error", diagErr)
			conv.Diagnosis = &DiagnosisResult{Error: diagErr.Error()}
		} else {
			conv.Diagnosis = &DiagnosisResult{Report: diagReport}
		}
	}

	return conv, true
}

func (a *Assembler) failedConversation(label string, err error) *Conversation {
	a.logger.Warn("conversation analysis failed", "thread", label, "error", err)
	return &Conversation{Error: err.Error()}
}

func (a *Assembler) newProgressBar(total int) *progressbar.ProgressBar {
	if a.progressOut == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(a.progressOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Analyzing conversations...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(a.progressOut); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
