// File: vetcare/services/client/interface.go
package client

import (
	clientRepo "vetcare/database/repository/client"
	"vetcare/models"
)

// ClientService manages pet-owner accounts.
type ClientService interface {
	Register(reg models.ClientRegistration) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeToken(clientID string) error

	GetByID(id string) (*models.Client, error)
	GetAll() ([]models.Client, error)
	Update(client models.Client) (*models.Client, error)
	Delete(id string) error
}

// DefaultClientService is the production ClientService implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}
