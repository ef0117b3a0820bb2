package models

// KarmaForm feeds the deterministic demo scoring.
type KarmaForm struct {
	Name  string `json:"name" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time,omitempty"`
	Place string `json:"place,omitempty"`
}

type KarmaScores struct {
	Integrity   int `json:"integrity"`
	Reciprocity int `json:"reciprocity"`
	Value       int `json:"value"`
}

type KarmaWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type KarmaOutput struct {
	Scores   KarmaScores `json:"scores"`
	Core     string      `json:"core"`
	Shadow   string      `json:"shadow"`
	Boundary string      `json:"boundary"`
	Window   KarmaWindow `json:"window"`
}

type KarmicDebt struct {
	Code   int    `json:"code"`
	Label  string `json:"label"`
	Why    string `json:"why"`
	Action string `json:"action"`
}

type DebtScanInput struct {
	Name string `json:"name" binding:"required"`
	DOB  string `json:"dob"`
}
