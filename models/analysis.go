package models

// AnalysisRequest is the birth data forwarded to the AI analyses.
type AnalysisRequest struct {
	Name       string `json:"name" binding:"required"`
	BirthDate  string `json:"birthDate" binding:"required"`
	BirthTime  string `json:"birthTime,omitempty"`
	BirthPlace string `json:"birthPlace,omitempty"`
}

type CompatibilityRequest struct {
	Person1 AnalysisRequest `json:"person1"`
	Person2 AnalysisRequest `json:"person2"`
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

type ActivationWindow struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// Numeric fields of the AI results are pointers so a key the model left out
// stays distinguishable from a zero score.
type KarmaDNAResult struct {
	CoreLesson         string           `json:"coreLesson"`
	ShadowTrigger      string           `json:"shadowTrigger"`
	BoundaryRule       string           `json:"boundaryRule"`
	StrengthsAnalysis  string           `json:"strengthsAnalysis"`
	ChallengesAnalysis string           `json:"challengesAnalysis"`
	ActionSteps        []string         `json:"actionSteps"`
	IntegrityScore     *float64         `json:"integrityScore"`
	ReciprocityScore   *float64         `json:"reciprocityScore"`
	ValueScore         *float64         `json:"valueScore"`
	ActivationWindow   ActivationWindow `json:"activationWindow"`
}

type AnalyzedDebt struct {
	Code          *int     `json:"code"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Impact        string   `json:"impact"`
	HealingAction string   `json:"healingAction"`
	Severity      Severity `json:"severity"`
}

type KarmicDebtsResult struct {
	Debts           []AnalyzedDebt `json:"debts"`
	OverallGuidance string         `json:"overallGuidance"`
}

type CompatibilityResult struct {
	OverallScore        *float64 `json:"overallScore"`
	MindCompatibility   *float64 `json:"mindCompatibility"`
	HeartCompatibility  *float64 `json:"heartCompatibility"`
	WillCompatibility   *float64 `json:"willCompatibility"`
	Strengths           []string `json:"strengths"`
	Challenges          []string `json:"challenges"`
	GrowthOpportunities []string `json:"growthOpportunities"`
	BondPurpose         string   `json:"bondPurpose"`
	Recommendations     []string `json:"recommendations"`
}

type ImpactWindow struct {
	Title           string   `json:"title"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Description     string   `json:"description"`
	Opportunities   []string `json:"opportunities"`
	Recommendations []string `json:"recommendations"`
	Intensity       Severity `json:"intensity"`
}

type ImpactWindowsResult struct {
	Windows   []ImpactWindow `json:"windows"`
	KeyThemes []string       `json:"keyThemes"`
}
