package services

import (
	"strings"
	"text/template"

	"astrokalki/models"
)

const karmaDNASystemPrompt = `You are an expert Vedic astrologer and karma analyst with deep knowledge of numerology, birth charts, and life patterns.

Analyze the provided birth data and generate a comprehensive Karma DNA analysis.

Focus on:
1. Core Life Lesson - The primary spiritual/karmic lesson this person is here to learn
2. Shadow Trigger - The unconscious pattern that holds them back
3. Boundary Rule - A specific, actionable boundary they must maintain
4. Strengths Analysis - Their natural gifts and positive patterns
5. Challenges Analysis - Areas where they face recurring difficulties
6. Action Steps - 5 specific, actionable steps they can take immediately
7. Scores (0-100 each):
   - Integrity Score: How aligned they are with their truth
   - Reciprocity Score: Balance in give-and-take relationships
   - Value Score: Living according to their core values
8. Activation Window - A 14-day period in the next 2 months when transformation is most potent

Make the analysis:
- Deeply personal and specific (not generic horoscope language)
- Actionable with clear DO/DON'T guidance
- Grounded in astrological patterns but written in modern, accessible language
- Honest about both strengths and challenges`

const karmicDebtsSystemPrompt = `You are an expert in karmic numerology and spiritual patterns.

Analyze the provided name and birth date to identify karmic debts - recurring life patterns that indicate unresolved lessons from past experiences.

Common karmic debt numbers and their meanings:
- Code 13: Work ethic and discipline challenges
- Code 14: Freedom and responsibility balance
- Code 16: Ego and humility lessons
- Code 19: Independence and power dynamics

For each identified debt, provide:
1. A clear, specific title
2. Deep description of the pattern
3. How it impacts daily life
4. A concrete healing action
5. Severity: low, medium, or high

Also provide overall guidance that ties all debts together.

Make it:
- Specific to the person (not generic)
- Compassionate but honest
- Actionable with clear next steps`

const compatibilitySystemPrompt = `You are an expert relationship astrologer specializing in synastry and compatibility analysis.

Analyze the birth data of two people to assess their compatibility across Mind, Heart, and Will dimensions.

Provide:
1. Overall Compatibility Score (0-100)
2. Mind Compatibility (0-100) - Intellectual connection, communication
3. Heart Compatibility (0-100) - Emotional connection, empathy
4. Will Compatibility (0-100) - Life goals, values alignment
5. Strengths - 3-5 areas where they naturally harmonize
6. Challenges - 3-5 areas of potential friction
7. Growth Opportunities - 3-5 ways they can evolve together
8. Bond Purpose - Why they met, what they're meant to learn together
9. Recommendations - 5 specific actions to strengthen the relationship

Be honest, nuanced, and constructive. Focus on growth potential.`

const impactWindowsSystemPrompt = `You are an expert Vedic astrologer specializing in transits and timing.

Identify the 3-5 most significant impact windows in the next 90 days for this person: periods when specific life areas are activated.

For each window provide:
1. A short title
2. Start and end dates (YYYY-MM-DD)
3. A description of what is activated
4. Opportunities to act on
5. Recommendations for the period
6. Intensity: low, medium, or high

Also list the key themes that run across all windows.

Be specific, practical, and avoid fatalistic language.`

var (
	karmaDNAPrompt = template.Must(template.New("karma-dna").Parse(`Please analyze:
Name: {{.Name}}
Birth Date: {{.BirthDate}}
Birth Time: {{or .BirthTime "Not provided"}}
Birth Place: {{or .BirthPlace "Not provided"}}

Generate a complete Karma DNA analysis in JSON format with all required fields.`))

	karmicDebtsPrompt = template.Must(template.New("karmic-debts").Parse(`Scan for karmic debts:
Name: {{.Name}}
Birth Date: {{.BirthDate}}

Identify 1-3 most significant karmic debts and provide comprehensive analysis in JSON format.`))

	compatibilityPrompt = template.Must(template.New("compatibility").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(`Analyze compatibility between:
{{range $i, $p := .}}
Person {{inc $i}}:
Name: {{$p.Name}}
Birth Date: {{$p.BirthDate}}
{{- if $p.BirthTime}}
Birth Time: {{$p.BirthTime}}{{end}}
{{- if $p.BirthPlace}}
Birth Place: {{$p.BirthPlace}}{{end}}
{{end}}
Generate comprehensive compatibility analysis in JSON format.`))

	impactWindowsPrompt = template.Must(template.New("impact-windows").Parse(`Find impact windows for:
Name: {{.Name}}
Birth Date: {{.BirthDate}}
Birth Time: {{or .BirthTime "Not provided"}}
Birth Place: {{or .BirthPlace "Not provided"}}
Today: {{.Today}}

Generate the 90-day impact windows analysis in JSON format.`))
)

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

type impactWindowsInput struct {
	models.AnalysisRequest
	Today string
}
