package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// RefreshCookieName is the cookie the refresh token travels in.
const RefreshCookieName = "refresh_token"

var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

// CreateRefreshSession issues a new opaque refresh token for a user.
func CreateRefreshSession(userID uuid.UUID) (*models.RefreshSession, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := models.RefreshSession{
		UserID:    userID,
		Token:     hex.EncodeToString(raw),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := config.Gorm.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh session: %w", err)
	}
	return &session, nil
}

// ValidateRefreshSession looks a token up and checks expiry.
func ValidateRefreshSession(token string) (*models.RefreshSession, error) {
	if token == "" {
		return nil, ErrInvalidRefreshToken
	}

	var session models.RefreshSession
	err := config.Gorm.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		config.Gorm.Delete(&session)
		return nil, ErrInvalidRefreshToken
	}
	return &session, nil
}

// RotateRefreshSession replaces a valid session with a fresh one.
func RotateRefreshSession(token string) (*models.RefreshSession, error) {
	session, err := ValidateRefreshSession(token)
	if err != nil {
		return nil, err
	}
	if err := config.Gorm.Delete(session).Error; err != nil {
		return nil, fmt.Errorf("failed to rotate refresh session: %w", err)
	}
	return CreateRefreshSession(session.UserID)
}

// RevokeRefreshSessions removes every session of a user (logout).
func RevokeRefreshSessions(userID uuid.UUID) error {
	return config.Gorm.Where("user_id = ?", userID).Delete(&models.RefreshSession{}).Error
}
