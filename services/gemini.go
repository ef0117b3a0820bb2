package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"astrokalki/config"
	"astrokalki/models"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("AI analysis is not configured")
	ErrEmptyResponse = errors.New("empty response from Gemini AI")
)

// Analyzer runs the AI readings. All reasoning happens in the external model;
// implementations only build prompts and check the shape of what comes back.
type Analyzer interface {
	AnalyzeKarmaDNA(ctx context.Context, req models.AnalysisRequest) (*models.KarmaDNAResult, error)
	ScanKarmicDebts(ctx context.Context, req models.AnalysisRequest) (*models.KarmicDebtsResult, error)
	AnalyzeCompatibility(ctx context.Context, req models.CompatibilityRequest) (*models.CompatibilityResult, error)
	AnalyzeImpactWindows(ctx context.Context, req models.AnalysisRequest) (*models.ImpactWindowsResult, error)
}

// generator is the part of the Gemini API the analyzer uses.
type generator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error)
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		[]*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    schema,
		},
	)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

type GeminiAnalyzer struct {
	gen     generator
	model   string
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewGeminiAnalyzer returns ErrNotConfigured when no API key is set.
func NewGeminiAnalyzer(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*GeminiAnalyzer, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return newGeminiAnalyzer(&genaiGenerator{client: client, model: model}, model, cfg.Timeout, logger), nil
}

func newGeminiAnalyzer(gen generator, model string, timeout time.Duration, logger *zap.Logger) *GeminiAnalyzer {
	if timeout <= 0 {
		timeout = config.DefaultAITimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiAnalyzer{gen: gen, model: model, timeout: timeout, logger: logger, now: time.Now}
}

func (a *GeminiAnalyzer) AnalyzeKarmaDNA(ctx context.Context, req models.AnalysisRequest) (*models.KarmaDNAResult, error) {
	prompt, err := render(karmaDNAPrompt, req)
	if err != nil {
		return nil, err
	}
	var out models.KarmaDNAResult
	if err := a.generate(ctx, "karma-dna", karmaDNASystemPrompt, prompt, karmaDNASchema, &out); err != nil {
		return nil, err
	}
	if err := validateKarmaDNA(&out); err != nil {
		return nil, aiFailure(err)
	}
	return &out, nil
}

func (a *GeminiAnalyzer) ScanKarmicDebts(ctx context.Context, req models.AnalysisRequest) (*models.KarmicDebtsResult, error) {
	prompt, err := render(karmicDebtsPrompt, req)
	if err != nil {
		return nil, err
	}
	var out models.KarmicDebtsResult
	if err := a.generate(ctx, "karmic-debts", karmicDebtsSystemPrompt, prompt, karmicDebtsSchema, &out); err != nil {
		return nil, err
	}
	if err := validateKarmicDebts(&out); err != nil {
		return nil, aiFailure(err)
	}
	return &out, nil
}

func (a *GeminiAnalyzer) AnalyzeCompatibility(ctx context.Context, req models.CompatibilityRequest) (*models.CompatibilityResult, error) {
	prompt, err := render(compatibilityPrompt, []models.AnalysisRequest{req.Person1, req.Person2})
	if err != nil {
		return nil, err
	}
	var out models.CompatibilityResult
	if err := a.generate(ctx, "compatibility", compatibilitySystemPrompt, prompt, compatibilitySchema, &out); err != nil {
		return nil, err
	}
	if err := validateCompatibility(&out); err != nil {
		return nil, aiFailure(err)
	}
	return &out, nil
}

func (a *GeminiAnalyzer) AnalyzeImpactWindows(ctx context.Context, req models.AnalysisRequest) (*models.ImpactWindowsResult, error) {
	prompt, err := render(impactWindowsPrompt, impactWindowsInput{
		AnalysisRequest: req,
		Today:           a.now().Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	var out models.ImpactWindowsResult
	if err := a.generate(ctx, "impact-windows", impactWindowsSystemPrompt, prompt, impactWindowsSchema, &out); err != nil {
		return nil, err
	}
	if err := validateImpactWindows(&out); err != nil {
		return nil, aiFailure(err)
	}
	return &out, nil
}

func (a *GeminiAnalyzer) generate(ctx context.Context, kind, systemPrompt, userPrompt string, schema *genai.Schema, out any) error {
	if a == nil || a.gen == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	raw, err := a.gen.GenerateJSON(ctx, systemPrompt, userPrompt, schema)
	log := a.logger.With(zap.String("analysis", kind), zap.String("model", a.model), zap.Duration("latency", time.Since(start)))
	if err != nil {
		log.Error("gemini request failed", zap.Error(err))
		return aiFailure(err)
	}

	raw = trimCodeFence(raw)
	if raw == "" {
		log.Error("gemini returned an empty response")
		return aiFailure(ErrEmptyResponse)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Error("gemini returned invalid JSON", zap.Error(err), zap.Int("bytes", len(raw)))
		return aiFailure(fmt.Errorf("invalid JSON: %w", err))
	}

	log.Debug("gemini analysis complete", zap.Int("bytes", len(raw)))
	return nil
}

func aiFailure(err error) error {
	return fmt.Errorf("AI analysis failed: %w", err)
}

// trimCodeFence strips a ```json fence some models add even in JSON mode.
func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func checkScore(name string, v *float64) error {
	if v == nil {
		return fmt.Errorf("response missing %s", name)
	}
	if *v < 0 || *v > 100 {
		return fmt.Errorf("%s %v out of range [0,100]", name, *v)
	}
	return nil
}

func checkRequired(fields map[string]string) error {
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("response missing %s", name)
		}
	}
	return nil
}

func validateKarmaDNA(r *models.KarmaDNAResult) error {
	if err := checkRequired(map[string]string{
		"coreLesson":                   r.CoreLesson,
		"shadowTrigger":                r.ShadowTrigger,
		"boundaryRule":                 r.BoundaryRule,
		"strengthsAnalysis":            r.StrengthsAnalysis,
		"challengesAnalysis":           r.ChallengesAnalysis,
		"activationWindow.start":       r.ActivationWindow.Start,
		"activationWindow.end":         r.ActivationWindow.End,
		"activationWindow.description": r.ActivationWindow.Description,
	}); err != nil {
		return err
	}
	if r.ActionSteps == nil {
		return errors.New("response missing actionSteps")
	}
	for name, v := range map[string]*float64{
		"integrityScore":   r.IntegrityScore,
		"reciprocityScore": r.ReciprocityScore,
		"valueScore":       r.ValueScore,
	} {
		if err := checkScore(name, v); err != nil {
			return err
		}
	}
	return nil
}

func validateKarmicDebts(r *models.KarmicDebtsResult) error {
	if r.Debts == nil {
		return errors.New("response missing debts")
	}
	if strings.TrimSpace(r.OverallGuidance) == "" {
		return errors.New("response missing overallGuidance")
	}
	for i, d := range r.Debts {
		if d.Code == nil {
			return fmt.Errorf("debts[%d] missing code", i)
		}
		if !d.Severity.Valid() {
			return fmt.Errorf("debts[%d] has invalid severity %q", i, d.Severity)
		}
		if strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("debts[%d] missing title", i)
		}
	}
	return nil
}

func validateCompatibility(r *models.CompatibilityResult) error {
	if strings.TrimSpace(r.BondPurpose) == "" {
		return errors.New("response missing bondPurpose")
	}
	for name, v := range map[string]*float64{
		"overallScore":       r.OverallScore,
		"mindCompatibility":  r.MindCompatibility,
		"heartCompatibility": r.HeartCompatibility,
		"willCompatibility":  r.WillCompatibility,
	} {
		if err := checkScore(name, v); err != nil {
			return err
		}
	}
	for name, list := range map[string][]string{
		"strengths":           r.Strengths,
		"challenges":          r.Challenges,
		"growthOpportunities": r.GrowthOpportunities,
		"recommendations":     r.Recommendations,
	} {
		if list == nil {
			return fmt.Errorf("response missing %s", name)
		}
	}
	return nil
}

func validateImpactWindows(r *models.ImpactWindowsResult) error {
	if r.Windows == nil {
		return errors.New("response missing windows")
	}
	if r.KeyThemes == nil {
		return errors.New("response missing keyThemes")
	}
	for i, w := range r.Windows {
		if !w.Intensity.Valid() {
			return fmt.Errorf("windows[%d] has invalid intensity %q", i, w.Intensity)
		}
		if strings.TrimSpace(w.StartDate) == "" || strings.TrimSpace(w.EndDate) == "" {
			return fmt.Errorf("windows[%d] missing dates", i)
		}
	}
	return nil
}
