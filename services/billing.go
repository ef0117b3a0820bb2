package services

import (
	"strings"
	"time"

	"astrokalki/models"
)

// PaymentMethodOrDefault treats an empty method as UPI, the primary flow.
func PaymentMethodOrDefault(m models.PaymentMethod) models.PaymentMethod {
	if m == "" {
		return models.PaymentUPI
	}
	return m
}

// ProPlanFromProof builds the upgraded plan. The proof is trusted as given;
// its timestamp wins over now when present.
func ProPlanFromProof(proof models.PaymentProof, now time.Time) models.UserPlan {
	upgradedAt := strings.TrimSpace(proof.Timestamp)
	if upgradedAt == "" {
		upgradedAt = now.UTC().Format(time.RFC3339)
	}
	return models.UserPlan{
		Plan:          models.PlanPro,
		UpgradedAt:    upgradedAt,
		PaymentMethod: PaymentMethodOrDefault(proof.Method),
		TransactionID: strings.TrimSpace(proof.UTR),
	}
}
