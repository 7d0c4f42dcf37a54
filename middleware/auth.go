// File: vetcare/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	clientRepo "vetcare/database/repository/client"
	staffRepo "vetcare/database/repository/staff"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// JWTAuthClientMiddleware authenticates pet-owner requests. The token
// must validate and its hash must match the stored session hash, so a
// revoked token fails even before expiry.
func JWTAuthClientMiddleware(repo clientRepo.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		if id, role, ok := utils.GetCachedSession(computedHash); ok && role == "client" {
			c.Set("clientID", id)
			c.Set("role", role)
			c.Next()
			return
		}

		cl, err := repo.GetByTokenHash(computedHash)
		if err != nil || cl == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or client not found"})
			return
		}
		utils.CacheSession(computedHash, cl.ID, "client")

		c.Set("clientID", cl.ID)
		c.Set("role", "client")
		c.Next()
	}
}

// JWTAuthStaffMiddleware authenticates staff requests (vets and
// secretaries) using the same token-hash scheme.
func JWTAuthStaffMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		if id, role, ok := utils.GetCachedSession(computedHash); ok && role != "client" {
			c.Set("staffID", id)
			c.Set("role", role)
			c.Next()
			return
		}

		member, err := repo.GetByTokenHash(computedHash)
		if err != nil || member == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or staff member not found"})
			return
		}
		utils.CacheSession(computedHash, member.ID, member.Role)

		c.Set("staffID", member.ID)
		c.Set("role", member.Role)
		c.Next()
	}
}

// JWTAuthAnyMiddleware accepts either a staff or a client session, for
// routes both sides use (slot lookup, appointment views). Staff wins
// when a token hash somehow matches both collections.
func JWTAuthAnyMiddleware(staffRepository staffRepo.StaffRepository, clientRepository clientRepo.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		if id, role, ok := utils.GetCachedSession(computedHash); ok {
			if role == "client" {
				c.Set("clientID", id)
			} else {
				c.Set("staffID", id)
			}
			c.Set("role", role)
			c.Next()
			return
		}

		if member, err := staffRepository.GetByTokenHash(computedHash); err == nil && member != nil {
			utils.CacheSession(computedHash, member.ID, member.Role)
			c.Set("staffID", member.ID)
			c.Set("role", member.Role)
			c.Next()
			return
		}
		if cl, err := clientRepository.GetByTokenHash(computedHash); err == nil && cl != nil {
			utils.CacheSession(computedHash, cl.ID, "client")
			c.Set("clientID", cl.ID)
			c.Set("role", "client")
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
	}
}
