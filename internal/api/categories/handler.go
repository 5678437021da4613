package categories

import (
	"net/http"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

func ListCategories(c *gin.Context) {
	var categories []catalog.Category
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to load categories").Body())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(c *gin.Context) {
	var category catalog.Category
	if err := database.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Category not found").Body())
		return
	}
	c.JSON(http.StatusOK, category)
}

func CreateCategory(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(err.Error()).Body())
		return
	}

	category := catalog.Category{Name: input.Name, Description: input.Description}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, apperrors.Conflict("Category name already exists").Body())
		return
	}
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	var category catalog.Category
	if err := database.DB.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Category not found").Body())
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apperrors.InvalidInput(err.Error()).Body())
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusConflict, apperrors.Conflict("Category name already exists").Body())
		return
	}
	c.JSON(http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	res := database.DB.Delete(&catalog.Category{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to delete category").Body())
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, apperrors.NotFound("Category not found").Body())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
