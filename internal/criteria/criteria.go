// Package criteria holds the static diagnostic criteria database:
// named conditions, their checklist criteria and the indicator phrases
// that count as evidence for each criterion.
package criteria

// Criterion is one checklist item within a condition. It is met when at
// least one of its indicator phrases appears in the subject's messages.
type Criterion struct {
	ID         string
	Text       string
	Indicators []string
}

// Condition is a named diagnostic category with a fixed checklist of
// criteria and a required-met-count threshold. Page numbers and the
// duration note are informational only and never used in scoring.
type Condition struct {
	Name     string
	Section  string
	Duration string
	DSMPage  int
	PDFPage  int
	Required int
	Criteria []Criterion
}

// Conditions returns the full criteria database in its canonical order.
// The returned slice is shared; callers must not modify it.
func Conditions() []Condition {
	return conditions
}

// Find returns the condition with the given name.
func Find(name string) (Condition, bool) {
	for _, c := range conditions {
		if c.Name == name {
			return c, true
		}
	}
	return Condition{}, false
}

// PriorityConditions are always assessed by the AI scorer, regardless
// of the affect-trigger prefilter.
var PriorityConditions = map[string]bool{
	"Separation Anxiety Disorder":  true,
	"Generalized Anxiety Disorder": true,
	"Panic Disorder":               true,
	"Major Depressive Disorder":    true,
	"Social Anxiety Disorder":      true,
}

// AffectTriggers gate AI assessment of non-priority conditions: when a
// transcript contains none of these words, those conditions are skipped
// as a cost-control heuristic. This trades recall for fewer API calls.
var AffectTriggers = []string{
	"scared", "worried", "anxious", "panic", "afraid", "miss", "sad", "depressed",
}
