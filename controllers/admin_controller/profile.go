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

// GetProfile godoc
// @Summary Get the logged user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Router /profile [get]
func GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.Gorm.WithContext(ctx).Preload("Company").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile retrieved successfully", user.Response()))
}

// EditProfile godoc
// @Summary Edit the logged user's profile
// @Description Updates the provided fields only. An optional "image" file part replaces the avatar.
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Router /profile [put]
func EditProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid profile form"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.Gorm.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to edit profile"))
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Province != nil {
		user.Province = *req.Province
	}
	if req.Municipality != nil {
		user.Municipality = *req.Municipality
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if header, err := c.FormFile("image"); err == nil {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
			return
		}
		defer file.Close()

		url, err := services.GetCloudinaryService().UploadImage(ctx, file, header.Filename, "medisearch/avatars")
		if err != nil {
			log.Printf("[profile.edit] ERROR uploading avatar err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
			return
		}
		user.UrlImage = url
	}

	if err := config.Gorm.WithContext(ctx).Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to edit profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile edited successfully", user.Response()))
}
