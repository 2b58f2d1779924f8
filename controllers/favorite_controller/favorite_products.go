package favorite_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddFavoriteProduct godoc
// @Summary Favorite a product
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param favorite body models.FavoriteProductRequest true "Favorite payload"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /favorites/products [post]
func AddFavoriteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.FavoriteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid favorite payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	favorite := models.FavoriteProduct{UserID: userID, ProductID: req.ProductID}
	if err := config.Gorm.WithContext(ctx).Create(&favorite).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is already a favorite"))
			return
		}
		log.Printf("[favorites.add_product] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add favorite"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Favorite added successfully", favorite))
}

// RemoveFavoriteProduct godoc
// @Summary Remove a favorited product
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /favorites/products/{id} [delete]
func RemoveFavoriteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.FavoriteProduct{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove favorite"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Favorite not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite removed successfully", nil))
}

// GetFavoriteProducts godoc
// @Summary List favorited products
// @Description Returns the caller's favorited products as catalog rows
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /favorites/products [get]
func GetFavoriteProducts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var favorites []models.FavoriteProduct
	err := config.Gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Company").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		log.Printf("[favorites.get_products] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load favorites"))
		return
	}

	items := make([]models.ProductListItem, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Product != nil {
			items = append(items, favorite.Product.ListItem())
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites retrieved successfully", items))
}
