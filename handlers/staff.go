// File: vetcare/handlers/staff.go
package handlers

import (
	"net/http"

	"vetcare/models"
	staffService "vetcare/services/staff"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes staff account and availability endpoints.
type StaffHandler struct {
	Service staffService.StaffService
}

func NewStaffHandler(svc staffService.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

func (h *StaffHandler) RegisterStaffHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var reg models.StaffRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Register(reg)
	if err != nil {
		logger.Error("Failed to register staff member", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to register staff member", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StaffHandler) AuthenticateStaffHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StaffHandler) GetStaffByIDHandler(c *gin.Context) {
	member, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) GetAllStaffHandler(c *gin.Context) {
	staff, err := h.Service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// GetVetsHandler lists the bookable staff members for the slot picker.
func (h *StaffHandler) GetVetsHandler(c *gin.Context) {
	vets, err := h.Service.GetVets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vets", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vets": vets})
}

func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	member.ID = c.Param("id")

	updated, err := h.Service.Update(member)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *StaffHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}

func (h *StaffHandler) RevokeStaffTokenHandler(c *gin.Context) {
	if err := h.Service.RevokeToken(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// SetAvailabilityHandler replaces a staff member's weekly windows,
// e.g. ["Monday 09:00-17:00", "Wednesday 09:00-13:00"].
func (h *StaffHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	member, err := h.Service.SetAvailability(c.Param("id"), req.Availability)
	if err != nil {
		logger.Error("Failed to set availability", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to set availability", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Availability updated",
		"staff":   member,
	})
}
