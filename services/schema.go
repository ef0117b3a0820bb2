package services

import "google.golang.org/genai"

func stringSchema() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

func numberSchema() *genai.Schema { return &genai.Schema{Type: genai.TypeNumber} }

func stringListSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: stringSchema()}
}

func levelSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: []string{"low", "medium", "high"}}
}

func objectSchema(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

var karmaDNASchema = objectSchema(map[string]*genai.Schema{
	"coreLesson":         stringSchema(),
	"shadowTrigger":      stringSchema(),
	"boundaryRule":       stringSchema(),
	"strengthsAnalysis":  stringSchema(),
	"challengesAnalysis": stringSchema(),
	"actionSteps":        stringListSchema(),
	"integrityScore":     numberSchema(),
	"reciprocityScore":   numberSchema(),
	"valueScore":         numberSchema(),
	"activationWindow": objectSchema(map[string]*genai.Schema{
		"start":       stringSchema(),
		"end":         stringSchema(),
		"description": stringSchema(),
	}, "start", "end", "description"),
},
	"coreLesson", "shadowTrigger", "boundaryRule", "strengthsAnalysis", "challengesAnalysis",
	"actionSteps", "integrityScore", "reciprocityScore", "valueScore", "activationWindow",
)

var karmicDebtsSchema = objectSchema(map[string]*genai.Schema{
	"debts": {
		Type: genai.TypeArray,
		Items: objectSchema(map[string]*genai.Schema{
			"code":          numberSchema(),
			"title":         stringSchema(),
			"description":   stringSchema(),
			"impact":        stringSchema(),
			"healingAction": stringSchema(),
			"severity":      levelSchema(),
		}, "code", "title", "description", "impact", "healingAction", "severity"),
	},
	"overallGuidance": stringSchema(),
}, "debts", "overallGuidance")

var compatibilitySchema = objectSchema(map[string]*genai.Schema{
	"overallScore":        numberSchema(),
	"mindCompatibility":   numberSchema(),
	"heartCompatibility":  numberSchema(),
	"willCompatibility":   numberSchema(),
	"strengths":           stringListSchema(),
	"challenges":          stringListSchema(),
	"growthOpportunities": stringListSchema(),
	"bondPurpose":         stringSchema(),
	"recommendations":     stringListSchema(),
},
	"overallScore", "mindCompatibility", "heartCompatibility", "willCompatibility",
	"strengths", "challenges", "growthOpportunities", "bondPurpose", "recommendations",
)

var impactWindowsSchema = objectSchema(map[string]*genai.Schema{
	"windows": {
		Type: genai.TypeArray,
		Items: objectSchema(map[string]*genai.Schema{
			"title":           stringSchema(),
			"startDate":       stringSchema(),
			"endDate":         stringSchema(),
			"description":     stringSchema(),
			"opportunities":   stringListSchema(),
			"recommendations": stringListSchema(),
			"intensity":       levelSchema(),
		}, "title", "startDate", "endDate", "description", "opportunities", "recommendations", "intensity"),
	},
	"keyThemes": stringListSchema(),
}, "windows", "keyThemes")
