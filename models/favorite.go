package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteProduct marks a product for a user. One row per (user, product).
type FavoriteProduct struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_fav_products_user_product"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;uniqueIndex:idx_fav_products_user_product"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (f *FavoriteProduct) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (FavoriteProduct) TableName() string {
	return "favorite_products"
}

// FavoriteCompany marks a company for a user. One row per (user, company).
type FavoriteCompany struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_fav_companies_user_company"`
	CompanyID uuid.UUID `json:"companyId" gorm:"type:uuid;not null;uniqueIndex:idx_fav_companies_user_company"`
	Company   *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (f *FavoriteCompany) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (FavoriteCompany) TableName() string {
	return "favorite_companies"
}

type FavoriteProductRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}

type FavoriteCompanyRequest struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}
