package middleware

import (
	"strings"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/users"
	"prompt-vault/internal/infra/tokens"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// AuthMiddleware verifies the bearer token and attaches the identity to the
// request. Every verification failure, malformed header included, is the
// same 401: the client learns nothing about why.
func AuthMiddleware(svc *tokens.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperrors.Unauthenticated("Authorization header missing"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortWith(c, apperrors.Unauthenticated("Bearer token malformed"))
			return
		}

		payload, err := svc.Verify(tokenString)
		if err != nil {
			abortWith(c, apperrors.Unauthenticated("Invalid or expired token"))
			return
		}

		c.Set(CtxUserID, payload.UserID)
		c.Set(CtxEmail, payload.Email)
		c.Next()
	}
}

// RequireRole gates a route on the stored role of the authenticated user.
// The token only carries identity, so the role is read from the database.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmail)

		var user users.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			abortWith(c, apperrors.Unauthenticated("Unknown user"))
			return
		}

		if user.Role != role {
			abortWith(c, apperrors.Forbidden("Access denied"))
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperrors.Error) {
	c.AbortWithStatusJSON(err.HTTPStatus, err.Body())
}
