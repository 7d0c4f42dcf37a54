// File: vetcare/services/client/service.go
package client

import (
	"fmt"
	"time"

	"vetcare/models"
	"vetcare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// ClientRole is the role claim carried by client session tokens.
const ClientRole = "client"

// Register creates a client account and returns a signed session token.
func (s *DefaultClientService) Register(reg models.ClientRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if existing, _ := s.Repo.GetByEmail(reg.Email); existing != nil {
		return nil, fmt.Errorf("client with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	c := &models.Client{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Phone:        reg.Phone,
		Address:      reg.Address,
	}

	token, err := utils.GenerateToken(c.ID, c.Email, ClientRole, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	c.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}

	logger.Info("client registered", zap.String("clientID", c.ID))
	return &models.AuthResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Role:  ClientRole,
		Token: token,
	}, nil
}

// Authenticate verifies credentials and rotates the session token.
func (s *DefaultClientService) Authenticate(email, password string) (*models.AuthResponse, error) {
	c, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(c.ID, c.Email, ClientRole, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if c.TokenHash != "" {
		utils.DropCachedSession(c.TokenHash)
	}
	if err := s.Repo.UpdateSetDocument(c.ID, map[string]any{
		"tokenHash": utils.HashToken(token),
		"updatedAt": time.Now(),
	}); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Role:  ClientRole,
		Token: token,
	}, nil
}

// RevokeToken invalidates the client's current session token and drops
// any cached copy of it.
func (s *DefaultClientService) RevokeToken(clientID string) error {
	c, err := s.Repo.GetByID(clientID)
	if err != nil {
		return err
	}
	if c.TokenHash != "" {
		utils.DropCachedSession(c.TokenHash)
	}
	return s.Repo.UpdateSetDocument(clientID, map[string]any{
		"tokenHash": "",
		"updatedAt": time.Now(),
	})
}

// GetByID fetches a client by ID.
func (s *DefaultClientService) GetByID(id string) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

// GetAll returns every registered client.
func (s *DefaultClientService) GetAll() ([]models.Client, error) {
	return s.Repo.GetAll()
}

// Update applies non-empty fields as a partial update.
func (s *DefaultClientService) Update(client models.Client) (*models.Client, error) {
	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}

	if client.Name != "" {
		updateFields["name"] = client.Name
	}
	if client.Email != "" {
		updateFields["email"] = client.Email
	}
	if client.Phone != "" {
		updateFields["phone"] = client.Phone
	}
	if client.Address != "" {
		updateFields["address"] = client.Address
	}

	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(client.ID, updateFields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(client.ID)
}

// Delete removes a client.
func (s *DefaultClientService) Delete(id string) error {
	return s.Repo.Delete(id)
}
