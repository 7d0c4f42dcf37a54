// File: vetcare/services/staff/auth.go
package staff

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

// Register creates a staff account and returns a signed session token.
func (s *DefaultStaffService) Register(reg models.StaffRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if existing, _ := s.Repo.GetByEmail(reg.Email); existing != nil {
		return nil, fmt.Errorf("staff member with email %s already exists", reg.Email)
	}

	if err := validateWindows(reg.Availability); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.Staff{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Phone:        reg.Phone,
		Role:         reg.Role,
		Specialty:    reg.Specialty,
		Availability: reg.Availability,
	}

	token, err := utils.GenerateToken(member.ID, member.Email, member.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	member.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(member); err != nil {
		return nil, err
	}

	logger.Info("staff member registered", zap.String("staffID", member.ID), zap.String("role", member.Role))
	return &models.AuthResponse{
		ID:    member.ID,
		Name:  member.Name,
		Email: member.Email,
		Role:  member.Role,
		Token: token,
	}, nil
}

// Authenticate verifies credentials and rotates the session token.
func (s *DefaultStaffService) Authenticate(email, password string) (*models.AuthResponse, error) {
	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(member.ID, member.Email, member.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if member.TokenHash != "" {
		utils.DropCachedSession(member.TokenHash)
	}
	if err := s.Repo.UpdateSetDocument(member.ID, map[string]any{
		"tokenHash": utils.HashToken(token),
		"updatedAt": time.Now(),
	}); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		ID:    member.ID,
		Name:  member.Name,
		Email: member.Email,
		Role:  member.Role,
		Token: token,
	}, nil
}

// RevokeToken invalidates the staff member's current session token and
// drops any cached copy of it.
func (s *DefaultStaffService) RevokeToken(staffID string) error {
	member, err := s.Repo.GetByID(staffID)
	if err != nil {
		return err
	}
	if member.TokenHash != "" {
		utils.DropCachedSession(member.TokenHash)
	}
	return s.Repo.UpdateSetDocument(staffID, map[string]any{
		"tokenHash": "",
		"updatedAt": time.Now(),
	})
}
