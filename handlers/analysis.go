package handlers

import (
	"context"
	"errors"
	"net/http"

	"astrokalki/models"
	"astrokalki/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const aiNotConfigured = "AI analysis is not configured. Please contact support."

// testAIRequest is the fixed reading sent by the AI health check.
var testAIRequest = models.AnalysisRequest{
	Name:       "Test User",
	BirthDate:  "1990-01-01",
	BirthTime:  "12:00",
	BirthPlace: "New York, USA",
}

func (h *Handler) TestAI(c *gin.Context) {
	if h.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "AI analysis is not configured. API key is missing.",
		})
		return
	}

	result, err := h.analyzer.AnalyzeKarmaDNA(c.Request.Context(), testAIRequest)
	if err != nil {
		h.logger.Error("AI test failed", zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "AI service is working correctly",
		"testResult": gin.H{
			"hasIntegrityScore":   result.IntegrityScore != nil,
			"hasReciprocityScore": result.ReciprocityScore != nil,
			"hasValueScore":       result.ValueScore != nil,
			"hasActionSteps":      result.ActionSteps != nil,
			"actionStepsCount":    len(result.ActionSteps),
		},
	})
}

func (h *Handler) AnalyzeKarmaDNA(c *gin.Context) {
	var req models.AnalysisRequest
	runAnalysis(h, c, "karma-dna", &req, func(ctx context.Context) (any, error) {
		return h.analyzer.AnalyzeKarmaDNA(ctx, req)
	})
}

func (h *Handler) ScanKarmicDebts(c *gin.Context) {
	var req models.AnalysisRequest
	runAnalysis(h, c, "karmic-debts", &req, func(ctx context.Context) (any, error) {
		return h.analyzer.ScanKarmicDebts(ctx, req)
	})
}

func (h *Handler) AnalyzeCompatibility(c *gin.Context) {
	var req models.CompatibilityRequest
	runAnalysis(h, c, "compatibility", &req, func(ctx context.Context) (any, error) {
		return h.analyzer.AnalyzeCompatibility(ctx, req)
	})
}

func (h *Handler) AnalyzeImpactWindows(c *gin.Context) {
	var req models.AnalysisRequest
	runAnalysis(h, c, "impact-windows", &req, func(ctx context.Context) (any, error) {
		return h.analyzer.AnalyzeImpactWindows(ctx, req)
	})
}

// runAnalysis checks for credentials before the body, so a server without a
// key answers 503 to every analysis request.
func runAnalysis(h *Handler, c *gin.Context, kind string, req any, call func(context.Context) (any, error)) {
	if h.analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": aiNotConfigured})
		return
	}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := call(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": aiNotConfigured})
			return
		}
		h.logger.Error("analysis failed", zap.String("analysis", kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
