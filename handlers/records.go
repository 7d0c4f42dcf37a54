// File: vetcare/handlers/records.go
package handlers

import (
	"net/http"

	"vetcare/models"
	recordService "vetcare/services/records"

	"github.com/gin-gonic/gin"
)

// RecordHandler exposes prescription and treatment endpoints.
type RecordHandler struct {
	Service recordService.RecordService
}

func NewRecordHandler(svc recordService.RecordService) *RecordHandler {
	return &RecordHandler{Service: svc}
}

func (h *RecordHandler) AddPrescriptionHandler(c *gin.Context) {
	var p models.Prescription
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if staffID, ok := c.Get("staffID"); ok {
		p.StaffID, _ = staffID.(string)
	}

	created, err := h.Service.AddPrescription(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add prescription", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RecordHandler) GetPrescriptionsByPetHandler(c *gin.Context) {
	prescriptions, err := h.Service.GetPrescriptionsByPet(c.Param("petID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prescriptions", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prescriptions": prescriptions})
}

func (h *RecordHandler) UpdatePrescriptionHandler(c *gin.Context) {
	var p models.Prescription
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	p.ID = c.Param("id")

	updated, err := h.Service.UpdatePrescription(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prescription", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RecordHandler) DeletePrescriptionHandler(c *gin.Context) {
	if err := h.Service.DeletePrescription(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prescription", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prescription deleted"})
}

func (h *RecordHandler) AddTreatmentHandler(c *gin.Context) {
	var tr models.Treatment
	if err := c.ShouldBindJSON(&tr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if staffID, ok := c.Get("staffID"); ok {
		tr.StaffID, _ = staffID.(string)
	}

	created, err := h.Service.AddTreatment(tr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add treatment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RecordHandler) GetTreatmentsByPetHandler(c *gin.Context) {
	treatments, err := h.Service.GetTreatmentsByPet(c.Param("petID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch treatments", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"treatments": treatments})
}

func (h *RecordHandler) UpdateTreatmentHandler(c *gin.Context) {
	var tr models.Treatment
	if err := c.ShouldBindJSON(&tr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	tr.ID = c.Param("id")

	updated, err := h.Service.UpdateTreatment(tr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update treatment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RecordHandler) DeleteTreatmentHandler(c *gin.Context) {
	if err := h.Service.DeleteTreatment(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete treatment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Treatment deleted"})
}
