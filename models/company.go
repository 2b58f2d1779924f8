package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company types
const (
	CompanyTypePharmacy   = "Farmacia"
	CompanyTypeLaboratory = "Laboratorio"
)

type Company struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Ceo          string    `json:"ceo" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null;index"`
	Type         string    `json:"type" gorm:"not null;check:type IN ('Farmacia', 'Laboratorio');index"`
	Province     string    `json:"province" gorm:"not null;index"`
	Municipality string    `json:"municipality" gorm:"not null"`
	Address      string    `json:"address" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	Phone        string    `json:"phone" gorm:"not null"`
	WebSite      string    `json:"webSite"`
	Facebook     string    `json:"facebook"`
	Instagram    string    `json:"instagram"`
	Twitter      string    `json:"twitter"`
	UrlImage     string    `json:"urlImage"`
	Active       bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (co *Company) BeforeCreate(tx *gorm.DB) error {
	if co.ID == uuid.Nil {
		co.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Company) TableName() string {
	return "companies"
}

// CompanyRequest binds the multipart company signup form. The logo arrives
// as a file part.
type CompanyRequest struct {
	Ceo          string `form:"ceo" binding:"required"`
	Name         string `form:"nameCompany" binding:"required"`
	Type         string `form:"companyType" binding:"required,oneof=Farmacia Laboratorio"`
	Province     string `form:"provinceCompany" binding:"required"`
	Municipality string `form:"municipalityCompany" binding:"required"`
	Address      string `form:"addressCompany" binding:"required"`
	Email        string `form:"emailCompany" binding:"required,email"`
	Phone        string `form:"phoneCompany" binding:"required"`
	WebSite      string `form:"webSite" binding:"omitempty,url"`
	Facebook     string `form:"facebook" binding:"omitempty,url"`
	Instagram    string `form:"instagram" binding:"omitempty,url"`
	Twitter      string `form:"twitter" binding:"omitempty,url"`
	Password     string `form:"password" binding:"required,min=8"`
}

// UpdateCompanyRequest carries the editable company profile fields. Pointer
// fields distinguish "leave unchanged" from "set empty".
type UpdateCompanyRequest struct {
	Ceo          *string `form:"ceo"`
	Province     *string `form:"provinceCompany"`
	Municipality *string `form:"municipalityCompany"`
	Address      *string `form:"addressCompany"`
	Phone        *string `form:"phoneCompany"`
	WebSite      *string `form:"webSite" binding:"omitempty,url"`
	Facebook     *string `form:"facebook" binding:"omitempty,url"`
	Instagram    *string `form:"instagram" binding:"omitempty,url"`
	Twitter      *string `form:"twitter" binding:"omitempty,url"`
}
