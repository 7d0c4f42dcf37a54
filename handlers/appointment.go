// File: vetcare/handlers/appointment.go
package handlers

import (
	"net/http"
	"strconv"

	"vetcare/models"
	appointmentService "vetcare/services/appointment"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking and schedule endpoints.
type AppointmentHandler struct {
	Service appointmentService.AppointmentService
}

func NewAppointmentHandler(svc appointmentService.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// GetAvailableSlotsHandler returns the bookable start times for a
// staff member. The date accepts free-form input ("2024-03-15",
// "3/15/2024", "15/3"); duration falls back to the clinic default.
func (h *AppointmentHandler) GetAvailableSlotsHandler(c *gin.Context) {
	staffID := c.Query("staffId")
	date := c.Query("date")
	if staffID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staffId and date query parameters are required"})
		return
	}

	duration := 0
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer number of minutes"})
			return
		}
		duration = parsed
	}

	resp, err := h.Service.AvailableSlots(staffID, date, duration)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to compute slots", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Book(req)
	if err != nil {
		logger.Warn("Booking rejected", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to book appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// canAccessAppointment allows staff unconditionally and clients for
// their own bookings.
func canAccessAppointment(c *gin.Context, a *models.Appointment) bool {
	role, _ := c.Get("role")
	if role != "client" {
		return true
	}
	clientID, _ := c.Get("clientID")
	id, _ := clientID.(string)
	return id != "" && id == a.ClientID
}

func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	existing, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found", "message": err.Error()})
		return
	}
	if !canAccessAppointment(c, existing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
		return
	}

	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Reschedule(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to reschedule appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	existing, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found", "message": err.Error()})
		return
	}
	if !canAccessAppointment(c, existing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
		return
	}

	if err := h.Service.Cancel(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Complete(c.Param("id"), body.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) GetAppointmentByIDHandler(c *gin.Context) {
	appt, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found", "message": err.Error()})
		return
	}
	if !canAccessAppointment(c, appt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler filters by clientId, petId or date (free
// text). Clients are always scoped to their own appointments.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	if role, _ := c.Get("role"); role == "client" {
		clientID, _ := c.Get("clientID")
		id, _ := clientID.(string)
		appts, err := h.Service.GetByClient(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
		return
	}

	var (
		appts []models.Appointment
		err   error
	)
	switch {
	case c.Query("clientId") != "":
		appts, err = h.Service.GetByClient(c.Query("clientId"))
	case c.Query("petId") != "":
		appts, err = h.Service.GetByPet(c.Query("petId"))
	case c.Query("date") != "":
		appts, err = h.Service.GetByDate(c.Query("date"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide clientId, petId or date"})
		return
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch appointments", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
