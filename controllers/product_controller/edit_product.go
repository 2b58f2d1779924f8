package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/filter"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditProduct godoc
// @Summary Edit a product
// @Description Updates a product of the caller's company from the multipart form. New "images" file parts replace the gallery; without them the current images stay.
// @Tags Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /products [put]
func EditProduct(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts can edit products"))
		return
	}

	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product form"))
		return
	}

	if !filter.ValidCategories(req.Classification, req.Categories) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Categories do not match the classification"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err = config.Gorm.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to edit product"))
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Classification = req.Classification
	product.Categories = models.StringList(req.Categories)
	product.Price = req.Price
	product.Quantity = req.Quantity

	if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
		urls, err := services.GetCloudinaryService().UploadMultipleImages(ctx, form.File["images"], "medisearch/products")
		if err != nil {
			log.Printf("[products.edit] ERROR uploading images err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
			return
		}
		product.Images = models.StringList(urls)
	}

	if err := config.Gorm.WithContext(ctx).Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to edit product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product edited successfully", product))
}
