package routes

import (
	"time"

	"github.com/RonP3B/medisearch-backend/controllers/account_controller"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAccountRoutes wires authentication, registration and recovery.
func SetupAccountRoutes(rg *gin.RouterGroup) {
	account := rg.Group("/account")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	account.POST("/login", middleware.RateLimiter(10, time.Minute), account_controller.Login)
	account.POST("/sign-user", account_controller.RegisterUser)
	account.POST("/sign-company", account_controller.RegisterCompany)

	// Refresh flow
	account.GET("/validate-refresh-token", account_controller.ValidateRefreshToken)
	account.POST("/refresh-token", account_controller.RefreshToken)
	account.POST("/logout", middleware.AuthMiddleware(), account_controller.Logout)

	// Google OAuth
	account.GET("/google", account_controller.GoogleLogin)
	account.GET("/google/callback", account_controller.GoogleCallback)

	// Password recovery
	recovery := account.Group("", middleware.RateLimiter(5, time.Minute))
	{
		recovery.POST("/find-user-reset", account_controller.FindUserReset)
		recovery.POST("/confirm-code", account_controller.ConfirmCode)
		recovery.POST("/change-password", account_controller.ChangePassword)
	}
}
