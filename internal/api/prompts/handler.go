package prompts

import (
	"net/http"
	"strconv"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.GetString("user_id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func ListPrompts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	query := database.DB.Preload("Category").Where("user_id = ?", userID)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var prompts []catalog.Prompt
	if err := query.Order("created_at desc").Find(&prompts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to load prompts").Body())
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": prompts})
}

func GetPrompt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	var prompt catalog.Prompt
	err := database.DB.Preload("Category").First(&prompt, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Prompt not found").Body())
		return
	}

	// public prompts are readable by anyone who is signed in
	if prompt.UserID != userID && !prompt.IsPublic {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Prompt not found").Body())
		return
	}
	c.JSON(http.StatusOK, prompt)
}

func CreatePrompt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	var input struct {
		Title      string `json:"title" binding:"required"`
		Body       string `json:"body" binding:"required"`
		CategoryID *uint  `json:"category_id"`
		Tags       string `json:"tags"`
		IsPublic   bool   `json:"is_public"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(err.Error()).Body())
		return
	}

	if input.CategoryID != nil {
		var category catalog.Category
		if err := database.DB.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Unknown category").Body())
			return
		}
	}

	prompt := catalog.Prompt{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Body:       input.Body,
		Tags:       input.Tags,
		IsPublic:   input.IsPublic,
	}
	if err := database.DB.Create(&prompt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to create prompt").Body())
		return
	}
	c.JSON(http.StatusCreated, prompt)
}

func UpdatePrompt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	var prompt catalog.Prompt
	err := database.DB.First(&prompt, "id = ? AND user_id = ?", c.Param("id"), userID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Prompt not found").Body())
		return
	}

	var input struct {
		Title      *string `json:"title"`
		Body       *string `json:"body"`
		CategoryID *uint   `json:"category_id"`
		Tags       *string `json:"tags"`
		IsPublic   *bool   `json:"is_public"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(err.Error()).Body())
		return
	}

	if input.Title != nil {
		prompt.Title = *input.Title
	}
	if input.Body != nil {
		prompt.Body = *input.Body
	}
	if input.CategoryID != nil {
		var category catalog.Category
		if err := database.DB.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, apperrors.InvalidInput("Unknown category").Body())
			return
		}
		prompt.CategoryID = input.CategoryID
	}
	if input.Tags != nil {
		prompt.Tags = *input.Tags
	}
	if input.IsPublic != nil {
		prompt.IsPublic = *input.IsPublic
	}

	if err := database.DB.Save(&prompt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to update prompt").Body())
		return
	}
	c.JSON(http.StatusOK, prompt)
}

func DeletePrompt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	res := database.DB.Delete(&catalog.Prompt{}, "id = ? AND user_id = ?", c.Param("id"), userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to delete prompt").Body())
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Prompt not found").Body())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prompt deleted"})
}
