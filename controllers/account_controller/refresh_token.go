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
)

// ValidateRefreshToken godoc
// @Summary Check the refresh token
// @Description Reports whether the refresh cookie still maps to a live session. Clients call this before attempting a silent refresh.
// @Tags Account
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /account/validate-refresh-token [get]
func ValidateRefreshToken(c *gin.Context) {
	token, _ := c.Cookie(services.RefreshCookieName)

	_, err := services.ValidateRefreshSession(token)
	valid := err == nil
	if err != nil && !errors.Is(err, services.ErrInvalidRefreshToken) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to validate refresh token"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Refresh token checked", gin.H{
		"validRefreshToken": valid,
	}))
}

// RefreshToken godoc
// @Summary Refresh the access token
// @Description Exchanges a valid refresh cookie for a new access token. The session is rotated.
// @Tags Account
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /account/refresh-token [post]
func RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(services.RefreshCookieName)

	session, err := services.RotateRefreshSession(token)
	if errors.Is(err, services.ErrInvalidRefreshToken) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid refresh token"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to refresh session"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).First(&user, "id = ?", session.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
		return
	}

	jwToken, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.CompanyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.RefreshCookieName, session.Token, int(time.Until(session.ExpiresAt).Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Token refreshed", gin.H{
		"jwToken": jwToken,
	}))
}

// Logout godoc
// @Summary Log out
// @Description Revokes every refresh session of the logged user and clears the cookie.
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /account/logout [post]
func Logout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	if err := services.RevokeRefreshSessions(userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log out"))
		return
	}

	c.SetCookie(services.RefreshCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
