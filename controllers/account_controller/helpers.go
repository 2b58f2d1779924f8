package account_controller

import (
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(c)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
