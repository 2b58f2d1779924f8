package home_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search the product catalog
// @Description Loads the catalog, optionally scoped to a company type, and applies every filter dimension from the query string: name, company, address, province, municipality, classification, category, quantity, minPrice, maxPrice
// @Tags Storefront
// @Produce json
// @Security BearerAuth
// @Param type query string false "Company type (Farmacia or Laboratorio)"
// @Success 200 {object} models.ApiResponse
// @Router /home/products [get]
func SearchProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: load the candidate list with its owning companies
	var products []models.Product
	query := config.Gorm.WithContext(ctx).
		Joins("JOIN companies ON companies.id = products.company_id AND companies.active = true").
		Preload("Company").
		Order("products.created_at DESC")
	if companyType := c.Query("type"); companyType != "" {
		query = query.Where("companies.type = ?", companyType)
	}
	if err := query.Find(&products).Error; err != nil {
		log.Printf("[home.search_products] ERROR loading products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search products"))
		return
	}

	// Step 2: flatten and run the filter dimensions in memory
	items := models.ProductListItems(products)
	maxPrice := models.MaxObservedPrice(items)
	state := stateFromQuery(c, maxPrice)
	filtered := state.FilterProducts(items)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved successfully", gin.H{
		"products":   filtered,
		"maxPrice":   maxPrice,
		"categories": state.AvailableCategories(),
	}))
}
