package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"astrokalki/config"
	"astrokalki/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	response string
	err      error

	systemPrompt string
	userPrompt   string
	schema       *genai.Schema
	deadlineSet  bool
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	f.schema = schema
	_, f.deadlineSet = ctx.Deadline()
	return f.response, f.err
}

const karmaDNAJSON = `{
	"coreLesson": "Speak before resentment builds",
	"shadowTrigger": "Silent over-giving",
	"boundaryRule": "No favours after 9pm",
	"strengthsAnalysis": "Loyal and steady",
	"challengesAnalysis": "Avoids conflict",
	"actionSteps": ["one", "two", "three", "four", "five"],
	"integrityScore": 82,
	"reciprocityScore": 61,
	"valueScore": 74,
	"activationWindow": {"start": "2026-11-01", "end": "2026-11-14", "description": "Ask for what you want"}
}`

var testRequest = models.AnalysisRequest{Name: "Asha Rao", BirthDate: "1990-04-12"}

func TestNewGeminiAnalyzerRequiresKey(t *testing.T) {
	a, err := NewGeminiAnalyzer(context.Background(), config.AIConfig{}, nil)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAnalyzeKarmaDNA(t *testing.T) {
	gen := &fakeGenerator{response: karmaDNAJSON}
	a := newGeminiAnalyzer(gen, "test-model", time.Second, nil)

	res, err := a.AnalyzeKarmaDNA(context.Background(), testRequest)
	require.NoError(t, err)

	assert.Equal(t, "Silent over-giving", res.ShadowTrigger)
	assert.Len(t, res.ActionSteps, 5)
	require.NotNil(t, res.IntegrityScore)
	assert.Equal(t, 82.0, *res.IntegrityScore)
	assert.Equal(t, "2026-11-14", res.ActivationWindow.End)

	assert.Equal(t, karmaDNASystemPrompt, gen.systemPrompt)
	assert.Contains(t, gen.userPrompt, "Name: Asha Rao")
	assert.Contains(t, gen.userPrompt, "Birth Time: Not provided")
	assert.Contains(t, gen.userPrompt, "Birth Place: Not provided")
	assert.Same(t, karmaDNASchema, gen.schema)
	assert.True(t, gen.deadlineSet)
}

func TestAnalyzeKarmaDNAFencedJSON(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + karmaDNAJSON + "\n```"}
	res, err := newGeminiAnalyzer(gen, "m", time.Second, nil).AnalyzeKarmaDNA(context.Background(), testRequest)
	require.NoError(t, err)
	require.NotNil(t, res.ValueScore)
	assert.Equal(t, 74.0, *res.ValueScore)
}

func TestAnalyzeFailures(t *testing.T) {
	cases := []struct {
		name     string
		gen      *fakeGenerator
		contains string
	}{
		{"upstream error", &fakeGenerator{err: errors.New("quota exceeded")}, "AI analysis failed: quota exceeded"},
		{"empty", &fakeGenerator{response: "  "}, "empty response"},
		{"not json", &fakeGenerator{response: "the stars say hello"}, "invalid JSON"},
		{"score out of range", &fakeGenerator{response: `{"coreLesson":"a","shadowTrigger":"b","boundaryRule":"c","strengthsAnalysis":"d","challengesAnalysis":"e","actionSteps":[],"integrityScore":140,"reciprocityScore":1,"valueScore":1,"activationWindow":{"start":"s","end":"e","description":"d"}}`}, "out of range"},
		{"missing field", &fakeGenerator{response: `{"coreLesson":"a"}`}, "response missing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newGeminiAnalyzer(tc.gen, "m", time.Second, nil).AnalyzeKarmaDNA(context.Background(), testRequest)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
			assert.NotErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestNilAnalyzerIsNotConfigured(t *testing.T) {
	var a *GeminiAnalyzer
	_, err := a.AnalyzeKarmaDNA(context.Background(), testRequest)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestScanKarmicDebtsAI(t *testing.T) {
	gen := &fakeGenerator{response: `{"debts":[{"code":14,"title":"Freedom","description":"d","impact":"i","healingAction":"h","severity":"medium"}],"overallGuidance":"Slow down"}`}
	res, err := newGeminiAnalyzer(gen, "m", time.Second, nil).ScanKarmicDebts(context.Background(), testRequest)
	require.NoError(t, err)
	require.Len(t, res.Debts, 1)
	require.NotNil(t, res.Debts[0].Code)
	assert.Equal(t, 14, *res.Debts[0].Code)
	assert.Equal(t, models.SeverityMedium, res.Debts[0].Severity)
	assert.Contains(t, gen.userPrompt, "Birth Date: 1990-04-12")

	gen.response = `{"debts":[{"code":14,"title":"Freedom","severity":"extreme"}],"overallGuidance":"x"}`
	_, err = newGeminiAnalyzer(gen, "m", time.Second, nil).ScanKarmicDebts(context.Background(), testRequest)
	assert.ErrorContains(t, err, "invalid severity")
}

func TestAnalyzeKarmaDNAMissingScores(t *testing.T) {
	for _, key := range []string{"integrityScore", "reciprocityScore", "valueScore"} {
		t.Run(key, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(karmaDNAJSON), &doc))
			delete(doc, key)
			raw, err := json.Marshal(doc)
			require.NoError(t, err)

			_, err = newGeminiAnalyzer(&fakeGenerator{response: string(raw)}, "m", time.Second, nil).AnalyzeKarmaDNA(context.Background(), testRequest)
			assert.ErrorContains(t, err, "response missing "+key)
		})
	}
}

func TestAnalyzeKarmaDNAZeroScoreAccepted(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(karmaDNAJSON), &doc))
	doc["valueScore"] = 0
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	res, err := newGeminiAnalyzer(&fakeGenerator{response: string(raw)}, "m", time.Second, nil).AnalyzeKarmaDNA(context.Background(), testRequest)
	require.NoError(t, err)
	require.NotNil(t, res.ValueScore)
	assert.Zero(t, *res.ValueScore)
}

func TestScanKarmicDebtsMissingCode(t *testing.T) {
	gen := &fakeGenerator{response: `{"debts":[{"title":"Freedom","description":"d","impact":"i","healingAction":"h","severity":"low"}],"overallGuidance":"x"}`}
	_, err := newGeminiAnalyzer(gen, "m", time.Second, nil).ScanKarmicDebts(context.Background(), testRequest)
	assert.ErrorContains(t, err, "debts[0] missing code")
}

func TestAnalyzeCompatibilityMissingScore(t *testing.T) {
	gen := &fakeGenerator{response: `{"overallScore":77,"mindCompatibility":70,"heartCompatibility":80,"strengths":[],"challenges":[],"growthOpportunities":[],"bondPurpose":"p","recommendations":[]}`}
	_, err := newGeminiAnalyzer(gen, "m", time.Second, nil).AnalyzeCompatibility(context.Background(), models.CompatibilityRequest{Person1: testRequest, Person2: testRequest})
	assert.ErrorContains(t, err, "response missing willCompatibility")
}

func TestAnalyzeCompatibility(t *testing.T) {
	gen := &fakeGenerator{response: `{"overallScore":77,"mindCompatibility":70,"heartCompatibility":80,"willCompatibility":65,"strengths":["a"],"challenges":["b"],"growthOpportunities":["c"],"bondPurpose":"Learn patience","recommendations":["d"]}`}
	req := models.CompatibilityRequest{
		Person1: models.AnalysisRequest{Name: "Asha", BirthDate: "1990-04-12", BirthPlace: "Pune"},
		Person2: models.AnalysisRequest{Name: "Ravi", BirthDate: "1988-09-30", BirthTime: "06:15"},
	}

	res, err := newGeminiAnalyzer(gen, "m", time.Second, nil).AnalyzeCompatibility(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Learn patience", res.BondPurpose)

	assert.Contains(t, gen.userPrompt, "Person 1:\nName: Asha")
	assert.Contains(t, gen.userPrompt, "Person 2:\nName: Ravi")
	assert.Contains(t, gen.userPrompt, "Birth Place: Pune")
	assert.Contains(t, gen.userPrompt, "Birth Time: 06:15")
	assert.NotContains(t, gen.userPrompt, "Not provided")
}

func TestAnalyzeImpactWindows(t *testing.T) {
	gen := &fakeGenerator{response: `{"windows":[{"title":"Career push","startDate":"2026-11-01","endDate":"2026-11-20","description":"d","opportunities":["o"],"recommendations":["r"],"intensity":"high"}],"keyThemes":["work"]}`}
	a := newGeminiAnalyzer(gen, "m", time.Second, nil)
	a.now = func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) }

	res, err := a.AnalyzeImpactWindows(context.Background(), testRequest)
	require.NoError(t, err)
	require.Len(t, res.Windows, 1)
	assert.Equal(t, models.SeverityHigh, res.Windows[0].Intensity)
	assert.Contains(t, gen.userPrompt, "Today: 2026-10-14")
	assert.Contains(t, gen.userPrompt, "Name: Asha Rao")
}

func TestTrimCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, trimCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, trimCodeFence(" {\"a\":1} "))
	assert.Equal(t, "", trimCodeFence("\n"))
}
