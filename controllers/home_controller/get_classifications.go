package home_controller

import (
	"net/http"

	"github.com/RonP3B/medisearch-backend/filter"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// GetClassifications godoc
// @Summary List product classifications
// @Description Returns every classification with its category set, in display order
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /home/classifications [get]
func GetClassifications(c *gin.Context) {
	type entry struct {
		Classification string   `json:"classification"`
		Categories     []string `json:"categories"`
	}

	entries := make([]entry, 0)
	for _, classification := range filter.Classifications() {
		categories, _ := filter.CategoriesFor(classification)
		entries = append(entries, entry{Classification: classification, Categories: categories})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Classifications retrieved successfully", entries))
}
