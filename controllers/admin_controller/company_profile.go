package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCompanyProfile godoc
// @Summary Get the caller's company profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Company}
// @Router /profile/company [get]
func GetCompanyProfile(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have a company profile"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var company models.Company
	err := config.Gorm.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Company not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load company profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Company profile retrieved successfully", company))
}

// EditCompanyProfile godoc
// @Summary Edit the caller's company profile
// @Description Updates the provided fields only. An optional "imageLogo" file part replaces the logo. Restricted to the company owner.
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Company}
// @Router /profile/company [put]
func EditCompanyProfile(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have a company profile"))
		return
	}

	var req models.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid company form"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var company models.Company
	err := config.Gorm.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Company not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to edit company profile"))
		return
	}

	if req.Ceo != nil {
		company.Ceo = *req.Ceo
	}
	if req.Province != nil {
		company.Province = *req.Province
	}
	if req.Municipality != nil {
		company.Municipality = *req.Municipality
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.WebSite != nil {
		company.WebSite = *req.WebSite
	}
	if req.Facebook != nil {
		company.Facebook = *req.Facebook
	}
	if req.Instagram != nil {
		company.Instagram = *req.Instagram
	}
	if req.Twitter != nil {
		company.Twitter = *req.Twitter
	}

	if header, err := c.FormFile("imageLogo"); err == nil {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read logo"))
			return
		}
		defer file.Close()

		url, err := services.GetCloudinaryService().UploadImage(ctx, file, header.Filename, "medisearch/logos")
		if err != nil {
			log.Printf("[profile.edit_company] ERROR uploading logo err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload logo"))
			return
		}
		company.UrlImage = url
	}

	if err := config.Gorm.WithContext(ctx).Save(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to edit company profile"))
		return
	}

	logActivity(c, companyID, "edited_company_profile", "company", company.ID.String(), nil)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Company profile edited successfully", company))
}
