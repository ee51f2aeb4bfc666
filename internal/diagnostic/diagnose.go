package diagnostic

import (
	"context"
	"log/slog"
	"sort"

	"github.com/psychograph/psychograph/internal/common"
	"github.com/psychograph/psychograph/internal/criteria"
)

// conditionFilter is an optional Scorer capability: scorers that
// implement it can skip conditions entirely before assessment.
type conditionFilter interface {
	ShouldAssess(cond criteria.Condition, transcriptText string) bool
}

// Diagnostician runs a Scorer across the whole criteria database and
// ranks the results.
type Diagnostician struct {
	scorer     Scorer
	conditions []criteria.Condition
	logger     *slog.Logger
}

// NewDiagnostician creates a diagnostician over the given conditions.
// Pass criteria.Conditions() for the built-in database.
func NewDiagnostician(scorer Scorer, conditions []criteria.Condition, logger *slog.Logger) *Diagnostician {
	if logger == nil {
		logger = slog.Default()
	}
	return &Diagnostician{
		scorer:     scorer,
		conditions: conditions,
		logger:     logger,
	}
}

// Diagnose assesses every condition against the transcript, sorts the
// assessments descending by percentage met (stable, so ties keep
// database order) and selects the first threshold-meeting assessment
// as primary. A per-condition scorer failure skips that condition and
// the run continues.
func (d *Diagnostician) Diagnose(ctx context.Context, transcriptText string) (*Report, error) {
	if len(d.conditions) == 0 {
		return nil, common.ErrNoConditions
	}

	filter, hasFilter := d.scorer.(conditionFilter)

	assessments := make([]ConditionAssessment, 0, len(d.conditions))
	for _, cond := range d.conditions {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if hasFilter && !filter.ShouldAssess(cond, transcriptText) {
			d.logger.Debug("Skipping condition via prefilter", "condition", cond.Name)
			continue
		}

		assessment, err := d.scorer.Assess(ctx, cond, transcriptText)
		if err != nil {
			d.logger.Warn("Condition assessment failed, skipping",
				"condition", cond.Name,
				"error", err)
			continue
		}
		assessments = append(assessments, assessment)
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].PercentageMet > assessments[j].PercentageMet
	})

	report := &Report{
		AllAssessments: assessments,
		Disclaimer:     Disclaimer,
	}
	for i := range assessments {
		if assessments[i].MeetsThreshold {
			report.PrimaryDiagnosis = &assessments[i]
			break
		}
	}

	return report, nil
}
