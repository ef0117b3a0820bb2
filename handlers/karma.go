package handlers

import (
	"net/http"

	"astrokalki/models"
	"astrokalki/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) KarmaDNA(c *gin.Context) {
	var form models.KarmaForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.ComputeKarmaDNA(form))
}

func (h *Handler) KarmicDebts(c *gin.Context) {
	var in models.DebtScanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"debts": services.ScanKarmicDebts(in.Name, in.DOB)})
}
