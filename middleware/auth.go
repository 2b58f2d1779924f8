package middleware

import (
	"errors"
	"net/http"

	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware validates the access token from cookie or Authorization
// header. Expired tokens answer with the ERR_JWT code so clients can run
// their single silent refresh.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			token, err = utils.ExtractTokenFromHeader(authHeader)
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, models.CodedErrorResponse(c, models.ErrJWT, "Access token expired"))
			} else {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			}
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Set("companyID", claims.CompanyID)

		c.Next()
	}
}

// RequireRole allows only the given roles past. Must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
			c.Abort()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Insufficient permissions"))
		c.Abort()
	}
}

// RequireCompany allows only users attached to a company (SuperAdmin/Admin).
func RequireCompany() gin.HandlerFunc {
	return RequireRole(models.RoleSuperAdmin, models.RoleAdmin)
}

func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetCompanyIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("companyID")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok || str == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
