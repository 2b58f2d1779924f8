package product_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/filter"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Creates a product under the caller's company from the multipart form. At least one "images" file part is required.
// @Tags Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /products [post]
func CreateProduct(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts can create products"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product form"))
		return
	}

	// Categories must belong to the classification's category set
	if !filter.ValidCategories(req.Classification, req.Categories) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Categories do not match the classification"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one product image is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	urls, err := services.GetCloudinaryService().UploadMultipleImages(ctx, form.File["images"], "medisearch/products")
	if err != nil {
		log.Printf("[products.create] ERROR uploading images err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	product := models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Classification: req.Classification,
		Categories:     models.StringList(req.Categories),
		Price:          req.Price,
		Quantity:       req.Quantity,
		Images:         models.StringList(urls),
		CompanyID:      companyID,
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
