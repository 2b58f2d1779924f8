package account_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
)

// RegisterUser godoc
// @Summary Register a client account
// @Description Creates a Client user from the multipart signup form. The avatar is an optional "image" file part.
// @Tags Account
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /account/sign-user [post]
func RegisterUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid signup form"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register user"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email is already registered"))
		return
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register user"))
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleClient,
		Phone:        req.Phone,
		Province:     req.Province,
		Municipality: req.Municipality,
		Address:      req.Address,
	}

	// Optional avatar upload
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err == nil {
			defer file.Close()
			url, err := services.GetCloudinaryService().UploadImage(ctx, file, "", "medisearch/avatars")
			if err != nil {
				log.Printf("[account.sign-user] ERROR uploading avatar err=%v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
				return
			}
			user.UrlImage = url
		}
	}

	if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register user"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "User registered successfully", user.Response()))
}
