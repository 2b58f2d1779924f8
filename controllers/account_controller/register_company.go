package account_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterCompany godoc
// @Summary Register a company account
// @Description Creates a company (pharmacy or laboratory) and its SuperAdmin user from the multipart form. The logo is a required "imageLogo" file part.
// @Tags Account
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /account/sign-company [post]
func RegisterCompany(c *gin.Context) {
	var req models.CompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid company form"))
		return
	}

	fileHeader, err := c.FormFile("imageLogo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Company logo is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).Model(&models.Company{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register company"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Company email is already registered"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read company logo"))
		return
	}
	defer file.Close()

	logoURL, err := services.GetCloudinaryService().UploadImage(ctx, file, "", "medisearch/logos")
	if err != nil {
		log.Printf("[account.sign-company] ERROR uploading logo err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload logo"))
		return
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register company"))
		return
	}

	company := models.Company{
		Ceo:          req.Ceo,
		Name:         req.Name,
		Type:         req.Type,
		Province:     req.Province,
		Municipality: req.Municipality,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        req.Phone,
		WebSite:      req.WebSite,
		Facebook:     req.Facebook,
		Instagram:    req.Instagram,
		Twitter:      req.Twitter,
		UrlImage:     logoURL,
	}

	// Company + owner account created together
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		owner := models.User{
			FirstName:    req.Ceo,
			LastName:     "",
			Email:        req.Email,
			PasswordHash: passwordHash,
			Role:         models.RoleSuperAdmin,
			Phone:        req.Phone,
			Province:     req.Province,
			Municipality: req.Municipality,
			Address:      req.Address,
			UrlImage:     logoURL,
			CompanyID:    &company.ID,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register company"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Company registered, check the email to activate it", gin.H{
		"id": company.ID,
	}))
}
