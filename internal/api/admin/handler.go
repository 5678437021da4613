package admin

import (
	"net/http"
	"time"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/catalog"
	"prompt-vault/internal/domain/entitlement"
	"prompt-vault/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	IsVerified bool       `json:"is_verified"`
	Plan       string     `json:"plan"`
	Status     string     `json:"subscription_status"`
	ExpiresAt  *time.Time `json:"subscription_expires_at,omitempty"`
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("id asc").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to load users").Body())
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		sub := entitlement.Default.ResolveSubscription(u.SubjectID())
		adminUsers = append(adminUsers, AdminUser{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified,
			Plan:       string(sub.Plan),
			Status:     string(sub.Status),
			ExpiresAt:  sub.ExpiresAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": adminUsers})
}

type AdminStats struct {
	TotalUsers   int64          `json:"total_users"`
	TotalPrompts int64          `json:"total_prompts"`
	UsersPerPlan map[string]int `json:"users_per_plan"`
}

func Dashboard(c *gin.Context) {
	var stats AdminStats
	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&catalog.Prompt{}).Count(&stats.TotalPrompts)

	var all []users.User
	if err := database.DB.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to load users").Body())
		return
	}
	stats.UsersPerPlan = map[string]int{}
	for _, u := range all {
		sub := entitlement.Default.ResolveSubscription(u.SubjectID())
		stats.UsersPerPlan[string(sub.Plan)]++
	}

	c.JSON(http.StatusOK, stats)
}
