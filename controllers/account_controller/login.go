package account_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/RonP3B/medisearch-backend/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Log in
// @Description Authenticate with email/password. Returns a short-lived access token and sets the refresh cookie.
// @Tags Account
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /account/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid credentials payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.Gorm.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Incorrect email or password"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Incorrect email or password"))
		return
	}

	// Company accounts stay locked until the activation mail is confirmed
	if user.CompanyID != nil {
		var company models.Company
		if err := config.Gorm.WithContext(ctx).First(&company, "id = ?", user.CompanyID).Error; err == nil && !company.Active {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Company account is not active yet"))
			return
		}
	}

	issueSession(c, &user)
}

// issueSession generates the access token, stores a refresh session and
// writes both to the response. Shared by login, Google callback and refresh.
func issueSession(c *gin.Context, user *models.User) {
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.CompanyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	session, err := services.CreateRefreshSession(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.RefreshCookieName, session.Token, int(time.Until(session.ExpiresAt).Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		JwToken: token,
		User:    user.Response(),
	}))
}
