package home_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// SearchCompanies godoc
// @Summary Search companies
// @Description Lists active companies, optionally scoped to a type, filtered by company name, address, province and municipality query parameters
// @Tags Storefront
// @Produce json
// @Security BearerAuth
// @Param type query string false "Company type (Farmacia or Laboratorio)"
// @Success 200 {object} models.ApiResponse
// @Router /home/companies [get]
func SearchCompanies(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var companies []models.Company
	err := activeCompanies(config.Gorm.WithContext(ctx), c.Query("type")).
		Order("created_at DESC").
		Find(&companies).Error
	if err != nil {
		log.Printf("[home.search_companies] ERROR loading companies err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search companies"))
		return
	}

	state := stateFromQuery(c, 0)
	filtered := state.FilterCompanies(companies)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Companies retrieved successfully", filtered))
}
