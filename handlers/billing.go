package handlers

import (
	"net/http"
	"strings"

	"astrokalki/catalog"
	"astrokalki/models"
	"astrokalki/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func (h *Handler) GetUserPlan(c *gin.Context) {
	plan, err := h.store.GetUserPlan(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SubmitPaymentProof upgrades the plan on the submitted reference alone.
// Verification happens out of band, by whoever receives the notification.
func (h *Handler) SubmitPaymentProof(c *gin.Context) {
	var proof models.PaymentProof
	if err := c.ShouldBindJSON(&proof); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the length rule applies to the reference as stored
	proof.UTR = strings.TrimSpace(proof.UTR)
	if err := binding.Validator.ValidateStruct(&proof); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.store.SetUserPlan(c.Request.Context(), services.ProPlanFromProof(proof, h.now()))
	if err != nil {
		h.logger.Error("upgrade plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	h.logger.Info("payment proof accepted",
		zap.String("method", string(plan.PaymentMethod)),
		zap.String("transaction_id", plan.TransactionID),
	)
	if h.notifier != nil {
		h.notifier.PaymentProofSubmitted(proof, plan)
	}
	c.JSON(http.StatusOK, plan)
}

type paymentDetails struct {
	catalog.Payment
	UPILink string `json:"upiLink"`
}

func (h *Handler) ListPlans(c *gin.Context) {
	amount := 0
	if pro, ok := h.catalog.Plan(string(models.PlanPro)); ok {
		amount = pro.Price
	}
	c.JSON(http.StatusOK, gin.H{
		"plans": h.catalog.Plans,
		"payment": paymentDetails{
			Payment: h.catalog.Payment,
			UPILink: h.catalog.Payment.UPILink(amount),
		},
	})
}
