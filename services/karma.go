package services

import (
	"strings"
	"unicode/utf16"

	"astrokalki/models"
)

// The demo readings are fixed-table lookups seeded by character sums. They are
// placeholder content; the AI analyses are the real readings.

var (
	coreLessons = [4]string{
		"Boundaries before rescue",
		"Own your ask, early",
		"Slow down to decide",
		"Choose truth over harmony",
	}
	boundaryRules = [4]string{
		"If it costs sleep, say no",
		"No rescue without request",
		"One ask per day, clean",
		"Reply within 24h, or decline",
	}
	shadowTriggers = [4]string{
		"People-pleasing",
		"Avoidant asks",
		"Over-control",
		"Delay loops",
	}
)

const (
	MinKarmaScore = 30
	MaxKarmaScore = 95

	demoWindowStart = "2025-11-22"
	demoWindowEnd   = "2025-12-02"
)

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func karmaPct(n int) int {
	return clamp(n%100, MinKarmaScore, MaxKarmaScore)
}

// ComputeKarmaDNA is deterministic in (name, date). The seed sums UTF-16 code
// units, so a character outside the BMP counts as its two surrogates.
func ComputeKarmaDNA(form models.KarmaForm) models.KarmaOutput {
	seed := 0
	for _, u := range utf16.Encode([]rune(form.Name + form.Date)) {
		seed += int(u)
	}
	idx := seed % 4

	return models.KarmaOutput{
		Scores: models.KarmaScores{
			Integrity:   karmaPct(seed * 31 % 100),
			Reciprocity: karmaPct(seed * 17 % 100),
			Value:       karmaPct(seed * 23 % 100),
		},
		Core:     coreLessons[idx],
		Shadow:   shadowTriggers[idx],
		Boundary: boundaryRules[idx],
		Window:   models.KarmaWindow{Start: demoWindowStart, End: demoWindowEnd},
	}
}

// Chaldean letter values.
var chaldean = map[rune]int{
	'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 8, 'g': 3, 'h': 5, 'i': 1,
	'j': 1, 'k': 2, 'l': 3, 'm': 4, 'n': 5, 'o': 7, 'p': 8, 'q': 1, 'r': 2,
	's': 3, 't': 4, 'u': 6, 'v': 6, 'w': 6, 'x': 5, 'y': 1, 'z': 7,
}

var debtCodes = [4]int{13, 14, 16, 19}

var debtTable = map[int]models.KarmicDebt{
	13: {Code: 13, Label: "Work ethic karma", Why: "Avoid shortcuts; finish what you start.", Action: "Ship one small task before noon."},
	14: {Code: 14, Label: "Freedom discipline", Why: "Scattered energy dilutes power.", Action: "Define a 2-hour focus block; phone outside room."},
	16: {Code: 16, Label: "Humility/Ego reset", Why: "Image over substance backfires.", Action: "Ask for feedback from one trusted friend."},
	19: {Code: 19, Label: "Authority/Independence", Why: "Delegation avoidance limits scale.", Action: "Document and hand off one task today."},
}

// IsKarmicDebtCode reports whether code is one of 13, 14, 16, 19.
func IsKarmicDebtCode(code int) bool {
	_, ok := debtTable[code]
	return ok
}

// reduceDigits repeatedly sums decimal digits until one digit remains.
func reduceDigits(n int) int {
	for n > 9 {
		sum := 0
		for ; n > 0; n /= 10 {
			sum += n % 10
		}
		n = sum
	}
	return n
}

// ScanKarmicDebts always yields exactly one debt. dob may be empty.
func ScanKarmicDebts(name, dob string) []models.KarmicDebt {
	total := 0
	for _, r := range strings.ToLower(name) {
		total += chaldean[r]
	}
	nameNum := reduceDigits(total)

	mod := 0
	if dob != "" {
		digits := 0
		for _, r := range dob {
			if r >= '0' && r <= '9' {
				digits += int(r - '0')
			}
		}
		mod = reduceDigits(digits)
	}

	code := debtCodes[(nameNum+mod)%len(debtCodes)]
	return []models.KarmicDebt{debtTable[code]}
}
