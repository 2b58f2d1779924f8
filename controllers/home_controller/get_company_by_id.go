package home_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyByID godoc
// @Summary Get a company profile
// @Description Returns a listed company with its product catalog
// @Tags Storefront
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /home/companies/{id} [get]
func GetCompanyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid company id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var company models.Company
	err = config.Gorm.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Company not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load company"))
		return
	}

	var products []models.Product
	err = config.Gorm.WithContext(ctx).
		Where("company_id = ?", id).
		Preload("Company").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		log.Printf("[home.get_company] ERROR loading products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load company"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Company retrieved successfully", gin.H{
		"company":  company,
		"products": models.ProductListItems(products),
	}))
}
