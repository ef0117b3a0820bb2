package handlers

import (
	"net/http"
	"strings"

	"astrokalki/middleware"
	"astrokalki/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	if h.admin.JWTSecret == "" || h.admin.PasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is not configured"})
		return
	}

	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.admin.Email != "" && !strings.EqualFold(strings.TrimSpace(input.Email), h.admin.Email) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(input.Password)); err != nil {
		h.logger.Warn("admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expires, err := middleware.IssueAdminToken([]byte(h.admin.JWTSecret), input.Email, h.admin.TokenTTL, h.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	middleware.SetAdminCookie(c, token, h.admin.TokenTTL)
	c.JSON(http.StatusOK, models.AdminSession{Email: input.Email, Token: token, ExpiresAt: expires})
}

// ListAppointments is the admin view. Confirmation tokens are never listed.
func (h *Handler) ListAppointments(c *gin.Context) {
	list, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		h.logger.Error("list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	h.logger.Info("admin listed appointments", zap.String("admin", middleware.AdminEmail(c)), zap.Int("count", len(list)))

	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		a.ConfirmationToken = ""
		out = append(out, a)
	}
	c.JSON(http.StatusOK, gin.H{"appointments": out})
}
