package users

import (
	"net/http"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/entitlement"
	"prompt-vault/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type UserDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AuthProvider string `json:"auth_provider"`
	IsVerified   bool   `json:"is_verified"`
}

type MeResponse struct {
	User         UserDTO                  `json:"user"`
	Subscription entitlement.Subscription `json:"subscription"`
}

// GetCurrentUser returns the stored profile plus the resolved subscription.
func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("User not found").Body())
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			AuthProvider: user.AuthProvider,
			IsVerified:   user.IsVerified,
		},
		Subscription: entitlement.Default.ResolveSubscription(user.SubjectID()),
	}

	c.JSON(http.StatusOK, resp)
}
