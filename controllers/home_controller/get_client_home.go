package home_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// GetClientHome godoc
// @Summary Client home feed
// @Description Returns the full pharmacy catalog plus the listed pharmacies for client accounts
// @Tags Storefront
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /home/client [get]
func GetClientHome(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Clients buy from pharmacies only; laboratories sell wholesale.
	var products []models.Product
	err := config.Gorm.WithContext(ctx).
		Joins("JOIN companies ON companies.id = products.company_id AND companies.active = true").
		Where("companies.type = ?", models.CompanyTypePharmacy).
		Preload("Company").
		Order("products.created_at DESC").
		Find(&products).Error
	if err != nil {
		log.Printf("[home.get_client_home] ERROR loading products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home"))
		return
	}

	var pharmacies []models.Company
	err = activeCompanies(config.Gorm.WithContext(ctx), models.CompanyTypePharmacy).
		Order("created_at DESC").
		Find(&pharmacies).Error
	if err != nil {
		log.Printf("[home.get_client_home] ERROR loading pharmacies err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load home"))
		return
	}

	items := models.ProductListItems(products)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home retrieved successfully", gin.H{
		"products":  items,
		"companies": pharmacies,
		"maxPrice":  models.MaxObservedPrice(items),
	}))
}
