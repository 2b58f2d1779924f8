package account_controller

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const recoveryCodeTTL = 15 * time.Minute

// FindUserReset godoc
// @Summary Start password recovery
// @Description Generates a recovery code for the account and mails it. Always answers 200 so the endpoint cannot be used to probe emails.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body models.FindUserResetRequest true "Account email"
// @Success 200 {object} models.ApiResponse
// @Router /account/reset-password [post]
func FindUserReset(c *gin.Context) {
	var req models.FindUserResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.Gorm.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "If the account exists, a code was sent", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start recovery"))
		return
	}

	code, err := generateRecoveryCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start recovery"))
		return
	}

	// One pending reset per user
	config.Gorm.WithContext(ctx).Where("user_id = ?", user.ID).Delete(&models.PasswordReset{})

	reset := models.PasswordReset{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(recoveryCodeTTL),
	}
	if err := config.Gorm.WithContext(ctx).Create(&reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start recovery"))
		return
	}

	if err := services.GetResendService().SendRecoveryCode(user.Email, code); err != nil {
		log.Printf("[account.reset-password] ERROR sending recovery mail err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send recovery email"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "If the account exists, a code was sent", nil))
}

// ConfirmCode godoc
// @Summary Confirm a recovery code
// @Tags Account
// @Accept json
// @Produce json
// @Param request body models.ConfirmCodeRequest true "Email and code"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /account/confirm-code [post]
func ConfirmCode(c *gin.Context) {
	var req models.ConfirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reset, ok := findPendingReset(ctx, c, req.Email, req.Code)
	if !ok {
		return
	}

	reset.Confirmed = true
	if err := config.Gorm.WithContext(ctx).Save(reset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to confirm code"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Code confirmed", nil))
}

// ChangePassword godoc
// @Summary Change password with a confirmed recovery code
// @Tags Account
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Email, code and new password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /account/change-password [post]
func ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reset, ok := findPendingReset(ctx, c, req.Email, req.Code)
	if !ok {
		return
	}
	if !reset.Confirmed {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Code has not been confirmed"))
		return
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to change password"))
		return
	}

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).Update("password_hash", passwordHash).Error; err != nil {
			return err
		}
		if err := tx.Delete(reset).Error; err != nil {
			return err
		}
		// Changing the password drops every open session
		return tx.Where("user_id = ?", reset.UserID).Delete(&models.RefreshSession{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to change password"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Password changed successfully", nil))
}

func findPendingReset(ctx context.Context, c *gin.Context, email, code string) (*models.PasswordReset, bool) {
	var user models.User
	if err := config.Gorm.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid code"))
		return nil, false
	}

	var reset models.PasswordReset
	err := config.Gorm.WithContext(ctx).Where("user_id = ? AND code = ?", user.ID, code).First(&reset).Error
	if err != nil || time.Now().After(reset.ExpiresAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid code"))
		return nil, false
	}
	return &reset, true
}

func generateRecoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
