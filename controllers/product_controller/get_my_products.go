package product_controller

import (
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMyProducts godoc
// @Summary Get the caller company's products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ProductListItem}
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetMyProducts(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have products"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Preload("Company").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", models.ProductListItems(products)))
}
