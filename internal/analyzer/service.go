package analyzer

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/psychograph/psychograph/internal/llm"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Service runs the three conversation analyses against a language model.
type Service interface {
	DefenseMechanisms(ctx context.Context, transcript, participant string) (*DefenseAnalysis, error)
	KPIs(ctx context.Context, transcript, participant string) (*KPIAnalysis, error)
	QualitativeSummary(ctx context.Context, transcript, participant string) (*Summary, error)
}

// LLMService implements Service with prompts rendered from embedded templates.
type LLMService struct {
	client    llm.Client
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewLLMService creates an LLMService with all prompt templates loaded.
func NewLLMService(client llm.Client, logger *slog.Logger) (*LLMService, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	svc := &LLMService{
		client:    client,
		templates: make(map[string]*template.Template),
		logger:    logger,
	}

	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	names := []string{
		"defense_mechanisms",
		"kpis",
		"qualitative_summary",
	}

	for _, name := range names {
		filename := fmt.Sprintf("templates/%s.tmpl", name)
		tmpl, err := template.New(fmt.Sprintf("%s.tmpl", name)).Funcs(funcMap).ParseFS(templateFS, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		svc.templates[name] = tmpl
	}

	return svc, nil
}

// promptData is the data passed to every analysis template.
type promptData struct {
	Participant string
	Transcript  string
	Mechanisms  []string
}

// DefenseMechanisms counts defense mechanism use on both sides of the
// conversation, with one quoted example per mechanism.
func (s *LLMService) DefenseMechanisms(ctx context.Context, transcript, participant string) (*DefenseAnalysis, error) {
	var result DefenseAnalysis
	if err := s.run(ctx, "defense_mechanisms", transcript, participant, 1000, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// KPIs scores seven communication KPIs from 0-10 for both participants,
// plus overall and relationship-health scores.
func (s *LLMService) KPIs(ctx context.Context, transcript, participant string) (*KPIAnalysis, error) {
	var result KPIAnalysis
	if err := s.run(ctx, "kpis", transcript, participant, 1000, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// QualitativeSummary writes brief clinical case notes covering both sides
// of the conversation.
func (s *LLMService) QualitativeSummary(ctx context.Context, transcript, participant string) (*Summary, error) {
	var result Summary
	if err := s.run(ctx, "qualitative_summary", transcript, participant, 1200, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// run renders the named template, sends it to the model and decodes the
// JSON response into out.
func (s *LLMService) run(ctx context.Context, name, transcript, participant string, maxTokens int, out any) error {
	var buf bytes.Buffer
	data := promptData{
		Participant: participant,
		Transcript:  transcript,
		Mechanisms:  DefenseMechanisms,
	}
	if err := s.templates[name].ExecuteTemplate(&buf, fmt.Sprintf("%s.tmpl", name), data); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", name, err)
	}

	s.logger.Debug("running analysis", "analysis", name, "participant", participant)

	raw, err := s.client.Complete(ctx, llm.Request{
		Prompt:    buf.String(),
		MaxTokens: maxTokens,
	})
	if err != nil {
		return fmt.Errorf("%s analysis failed: %w", name, err)
	}

	cleaned := llm.CleanMarkdownWrapper(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", name, err)
	}
	return nil
}
