package admin_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// logActivity records a company-admin action. Failures are logged, never
// surfaced to the caller.
func logActivity(c *gin.Context, companyID uuid.UUID, action, resourceType, resourceID string, changes map[string]interface{}) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return
	}

	changesJSON, _ := json.Marshal(changes)
	entry := models.ActivityLog{
		UserID:       userID,
		CompanyID:    companyID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      datatypes.JSON(changesJSON),
		IPAddress:    c.ClientIP(),
	}

	if err := config.Gorm.Create(&entry).Error; err != nil {
		log.Printf("[admin.activity] failed to log %s: %v", action, err)
	}
}

// GetActivityLogs godoc
// @Summary List company activity logs
// @Description Returns the most recent audited actions of the caller's company
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have activity logs"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var logs []models.ActivityLog
	err := config.Gorm.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error
	if err != nil {
		log.Printf("[admin.activity] ERROR loading logs err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load activity logs"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Activity logs retrieved successfully", logs))
}
