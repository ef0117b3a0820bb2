package handlers

import (
	"errors"
	"net/http"

	"astrokalki/models"
	"astrokalki/services"
	"astrokalki/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const confirmationHeader = "X-Confirmation-Token"

func confirmationToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	return c.GetHeader(confirmationHeader)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var in models.AppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, ok := h.catalog.Session(in.SessionType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown session type"})
		return
	}

	appt, err := services.NewAppointment(in, session, h.meetingBaseURL, h.now())
	if err != nil {
		h.logger.Error("build appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	appt, err = h.store.CreateAppointment(c.Request.Context(), appt)
	if err != nil {
		h.logger.Error("store appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	h.logger.Info("appointment booked", zap.String("id", appt.ID), zap.String("session", appt.SessionType))
	if h.notifier != nil {
		h.notifier.AppointmentBooked(appt)
	}
	c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appt, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"), confirmationToken(c))
	if err != nil {
		h.appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var patch models.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.store.UpdateAppointment(c.Request.Context(), c.Param("id"), confirmationToken(c), patch)
	if err != nil {
		h.appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.store.DeleteAppointment(c.Request.Context(), c.Param("id"), confirmationToken(c)); err != nil {
		h.appointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

func (h *Handler) appointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	case errors.Is(err, storage.ErrInvalidToken):
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid confirmation token"})
	default:
		h.logger.Error("appointment storage", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
