package prompts

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"prompt-vault/database"
	"prompt-vault/internal/domain/apperrors"
	"prompt-vault/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// ExportPrompts streams the caller's prompts as a CSV attachment.
// Route-level middleware handles the csv-export feature gate and api-calls
// metering; this handler only builds the file.
func ExportPrompts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apperrors.Unauthenticated("Unauthorized").Body())
		return
	}

	var prompts []catalog.Prompt
	err := database.DB.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&prompts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to load prompts").Body())
		return
	}

	data, err := exportCSV(prompts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apperrors.Internal("Failed to build export").Body())
		return
	}

	filename := fmt.Sprintf("prompts-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func exportCSV(prompts []catalog.Prompt) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Title", "Body", "Category", "Tags", "Public", "CreatedAt"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range prompts {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		row := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Title,
			p.Body,
			category,
			p.Tags,
			strconv.FormatBool(p.IsPublic),
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
