package routes

import (
	"github.com/RonP3B/medisearch-backend/controllers/admin_controller"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes wires the company dashboard and profile management.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// Profile endpoints work for every logged user
	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", admin_controller.GetProfile)
		profile.PUT("", admin_controller.EditProfile)
	}

	companyProfile := rg.Group("/profile/company")
	companyProfile.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		companyProfile.GET("", admin_controller.GetCompanyProfile)
		companyProfile.PUT("", middleware.RequireRole(models.RoleSuperAdmin), admin_controller.EditCompanyProfile)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		admin.GET("/stats", admin_controller.GetStats)
		admin.GET("/stats/pdf", admin_controller.ExportStatsPDF)
	}

	// ════════════════════════════════════════════════════════════
	// Owner Only Routes
	// ════════════════════════════════════════════════════════════

	owner := rg.Group("/admin")
	owner.Use(
		middleware.AuthMiddleware(),
		middleware.RequireCompany(),
		middleware.RequireRole(models.RoleSuperAdmin),
	)
	{
		owner.GET("/employees", admin_controller.GetEmployees)
		owner.POST("/employees", admin_controller.RegisterEmployee)
		owner.DELETE("/employees/:id", admin_controller.DeleteEmployee)

		owner.GET("/activity-logs", admin_controller.GetActivityLogs)
	}
}
