// File: vetcare/handlers/dashboard.go
package handlers

import (
	"net/http"
	"time"

	dashboardService "vetcare/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the role-based landing views.
type DashboardHandler struct {
	Service dashboardService.DashboardService
}

func NewDashboardHandler(svc dashboardService.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// ClientDashboardHandler serves the authenticated pet owner's view.
func (h *DashboardHandler) ClientDashboardHandler(c *gin.Context) {
	clientIDValue, exists := c.Get("clientID")
	clientID, _ := clientIDValue.(string)
	if !exists || clientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Client not authenticated"})
		return
	}

	view, err := h.Service.ClientDashboard(clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SecretaryDashboardHandler serves the clinic-wide day view. The date
// query parameter accepts free text and defaults to today.
func (h *DashboardHandler) SecretaryDashboardHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	view, err := h.Service.SecretaryDashboard(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to build dashboard", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
