// File: vetcare/handlers/client.go
package handlers

import (
	"net/http"

	"vetcare/models"
	clientService "vetcare/services/client"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes pet-owner account endpoints.
type ClientHandler struct {
	Service clientService.ClientService
}

func NewClientHandler(svc clientService.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

func (h *ClientHandler) RegisterClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var reg models.ClientRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Register(reg)
	if err != nil {
		logger.Error("Failed to register client", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to register client", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientHandler) AuthenticateClientHandler(c *gin.Context) {
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

// ownsAccount restricts account endpoints to the authenticated client;
// staff sessions pass through.
func ownsAccount(c *gin.Context, id string) bool {
	if role, _ := c.Get("role"); role != "client" {
		return true
	}
	clientID, _ := c.Get("clientID")
	own, _ := clientID.(string)
	return own != "" && own == id
}

func (h *ClientHandler) GetClientByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if !ownsAccount(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your account"})
		return
	}

	cl, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) GetAllClientsHandler(c *gin.Context) {
	clients, err := h.Service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	if !ownsAccount(c, c.Param("id")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your account"})
		return
	}

	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	cl.ID = c.Param("id")

	updated, err := h.Service.Update(cl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

func (h *ClientHandler) RevokeClientTokenHandler(c *gin.Context) {
	if !ownsAccount(c, c.Param("id")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your account"})
		return
	}

	if err := h.Service.RevokeToken(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}
