package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.catalog.Sessions})
}

func (h *Handler) Radio(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Radio)
}
