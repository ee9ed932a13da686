package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotbook/services/scheduling"
)

// AppointmentHandler exposes the scheduling engine over HTTP. All parsing
// and type coercion happens here; the service only sees typed values.
type AppointmentHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

func NewAppointmentHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// GetAppointmentsHandler returns the slot availability report for a day.
func (h *AppointmentHandler) GetAppointmentsHandler(c *gin.Context) {
	raw := c.Query("appointmentDate")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentDate query parameter is required"})
		return
	}
	date, err := parseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointmentDate", "details": err.Error()})
		return
	}

	slots, err := h.Svc.Availability(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("failed to plan availability", zap.String("date", raw), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// MakeAppointmentHandler validates and creates an appointment.
func (h *AppointmentHandler) MakeAppointmentHandler(c *gin.Context) {
	var input struct {
		StartDateTime time.Time `json:"appointmentStartDateTime" binding:"required"`
		EndDateTime   time.Time `json:"appointmentEndDateTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.Book(c.Request.Context(), input.StartDateTime, input.EndDateTime)
	if err != nil {
		var reject *scheduling.RejectError
		if errors.As(err, &reject) {
			c.JSON(http.StatusBadRequest, gin.H{"error": reject.Message})
			return
		}
		h.Logger.Error("failed to create appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create appointment"})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointmentHandler deletes a future appointment by id.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("appointmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := h.Svc.Cancel(c.Request.Context(), id); err != nil {
		var reject *scheduling.RejectError
		if errors.As(err, &reject) {
			c.JSON(http.StatusBadRequest, gin.H{"error": reject.Message})
			return
		}
		h.Logger.Error("failed to cancel appointment", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}
