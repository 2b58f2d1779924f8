package account_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen. Only client accounts can sign in with Google.
// @Tags Account
// @Success 307
// @Router /account/google [get]
func GoogleLogin(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	state := c.Query("state")
	if state == "" {
		state = "medisearch"
	}
	c.Redirect(http.StatusTemporaryRedirect, config.GoogleOAuthConfig.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, verifies the ID token and logs the matching client in, creating the account on first sign-in.
// @Tags Account
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /account/google/callback [get]
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil || config.GoogleTokenVerifier == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing authorization code"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	oauthToken, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("[account.google-callback] ERROR exchanging code err=%v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google sign-in failed"))
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google sign-in failed"))
		return
	}

	idToken, err := config.GoogleTokenVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google sign-in failed"))
		return
	}

	var profile struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}
	if err := idToken.Claims(&profile); err != nil || profile.Email == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google sign-in failed"))
		return
	}

	var user models.User
	err = config.Gorm.WithContext(ctx).Where("email = ?", profile.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First sign-in creates a client account without a usable password
		user = models.User{
			FirstName:    profile.GivenName,
			LastName:     profile.FamilyName,
			Email:        profile.Email,
			PasswordHash: "!google-oauth",
			Role:         models.RoleClient,
			UrlImage:     profile.Picture,
		}
		if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	if user.Role != models.RoleClient {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Company accounts must use password login"))
		return
	}

	issueSession(c, &user)
}
