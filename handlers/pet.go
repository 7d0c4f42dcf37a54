// File: vetcare/handlers/pet.go
package handlers

import (
	"net/http"

	"vetcare/models"
	petService "vetcare/services/pet"

	"github.com/gin-gonic/gin"
)

// PetHandler exposes the patient-registry endpoints.
type PetHandler struct {
	Service petService.PetService
}

func NewPetHandler(svc petService.PetService) *PetHandler {
	return &PetHandler{Service: svc}
}

func (h *PetHandler) RegisterPetHandler(c *gin.Context) {
	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	// Owners register their own pets; the secretary may set any owner.
	if role, _ := c.Get("role"); role == "client" {
		clientID, _ := c.Get("clientID")
		p.OwnerID, _ = clientID.(string)
	}

	created, err := h.Service.Register(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to register pet", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PetHandler) GetPetByIDHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found", "message": err.Error()})
		return
	}

	if !canAccessPet(c, p) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your pet"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PetHandler) GetPetsHandler(c *gin.Context) {
	// Clients see their own pets; staff see the whole registry.
	if role, _ := c.Get("role"); role == "client" {
		clientID, _ := c.Get("clientID")
		ownerID, _ := clientID.(string)
		pets, err := h.Service.GetByOwner(ownerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pets", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pets": pets})
		return
	}

	pets, err := h.Service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pets", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

func (h *PetHandler) UpdatePetHandler(c *gin.Context) {
	existing, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found", "message": err.Error()})
		return
	}
	if !canAccessPet(c, existing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your pet"})
		return
	}

	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	p.ID = existing.ID

	updated, err := h.Service.Update(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pet", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	existing, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found", "message": err.Error()})
		return
	}
	if !canAccessPet(c, existing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your pet"})
		return
	}

	if err := h.Service.Delete(existing.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pet", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted successfully"})
}

// canAccessPet allows staff unconditionally and owners for their own pets.
func canAccessPet(c *gin.Context, p *models.Pet) bool {
	role, _ := c.Get("role")
	if role != "client" {
		return true
	}
	clientID, _ := c.Get("clientID")
	id, _ := clientID.(string)
	return id != "" && id == p.OwnerID
}
