package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"features": gin.H{
			"aiAnalysis":    h.analyzer != nil,
			"notifications": h.features.Notifications,
			"database":      h.features.Database,
		},
	})
}
