package home_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Company home feed
// @Description For a company account, returns the products and companies of the opposing type (pharmacies see laboratories and vice versa)
// @Tags Storefront
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /home [get]
func GetHome(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have a company home"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var owner models.Company
	if err := config.Gorm.WithContext(ctx).First(&owner, "id = ?", companyID).Error; err != nil {
		log.Printf("[home.get_home] ERROR loading company err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home"))
		return
	}
	counterpart := opposingType(owner.Type)

	var products []models.Product
	err := config.Gorm.WithContext(ctx).
		Joins("JOIN companies ON companies.id = products.company_id AND companies.active = true").
		Where("companies.type = ?", counterpart).
		Preload("Company").
		Order("products.created_at DESC").
		Find(&products).Error
	if err != nil {
		log.Printf("[home.get_home] ERROR loading products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home"))
		return
	}

	var companies []models.Company
	err = activeCompanies(config.Gorm.WithContext(ctx), counterpart).
		Order("created_at DESC").
		Find(&companies).Error
	if err != nil {
		log.Printf("[home.get_home] ERROR loading companies err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home"))
		return
	}

	items := models.ProductListItems(products)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home retrieved successfully", gin.H{
		"products":  items,
		"companies": companies,
		"maxPrice":  models.MaxObservedPrice(items),
	}))
}
