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

// AddFavoriteCompany godoc
// @Summary Favorite a company
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param favorite body models.FavoriteCompanyRequest true "Favorite payload"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /favorites/companies [post]
func AddFavoriteCompany(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.FavoriteCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid favorite payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	favorite := models.FavoriteCompany{UserID: userID, CompanyID: req.CompanyID}
	if err := config.Gorm.WithContext(ctx).Create(&favorite).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Company is already a favorite"))
			return
		}
		log.Printf("[favorites.add_company] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add favorite"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Favorite added successfully", favorite))
}

// RemoveFavoriteCompany godoc
// @Summary Remove a favorited company
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /favorites/companies/{id} [delete]
func RemoveFavoriteCompany(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid company id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Delete(&models.FavoriteCompany{})
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

// GetFavoriteCompanies godoc
// @Summary List favorited companies
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /favorites/companies [get]
func GetFavoriteCompanies(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var favorites []models.FavoriteCompany
	err := config.Gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Company").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		log.Printf("[favorites.get_companies] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load favorites"))
		return
	}

	companies := make([]models.Company, 0, len(favorites))
	for _, favorite := range favorites {
		if favorite.Company != nil {
			companies = append(companies, *favorite.Company)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites retrieved successfully", companies))
}
