package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records sensitive company-admin actions: employee management
// and company profile edits. Changes holds the action-specific payload.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	CompanyID    uuid.UUID      `json:"companyId" gorm:"type:uuid;not null;index"`
	Action       string         `json:"action" gorm:"not null"`
	ResourceType string         `json:"resourceType" gorm:"not null"`
	ResourceID   string         `json:"resourceId"`
	Changes      datatypes.JSON `json:"changes,omitempty" gorm:"type:jsonb"`
	IPAddress    string         `json:"ipAddress"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
