package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a jsonb array (categories, image URLs).
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string     `json:"name" gorm:"not null;index"`
	Description    string     `json:"description" gorm:"not null"`
	Classification string     `json:"classification" gorm:"not null;index"`
	Categories     StringList `json:"categories" gorm:"type:jsonb;not null;default:'[]'"`
	Price          float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Quantity       int        `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	Images         StringList `json:"urlImages" gorm:"type:jsonb;not null;default:'[]'"`
	CompanyID      uuid.UUID  `json:"companyId" gorm:"type:uuid;not null;index:idx_products_company"`
	Company        *Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
	CreatedAt      time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// ProductRequest binds the multipart product form. Images arrive as file
// parts and are handled separately by the controller.
type ProductRequest struct {
	Name           string   `form:"name" binding:"required"`
	Description    string   `form:"description" binding:"required"`
	Classification string   `form:"classification" binding:"required"`
	Categories     []string `form:"categories" binding:"required,min=1"`
	Price          float64  `form:"price" binding:"required,min=1"`
	Quantity       int      `form:"quantity" binding:"required,min=1"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductListItem is the flattened catalog row the storefront filters
// operate on. Company fields travel with the product so location predicates
// can run without extra lookups.
type ProductListItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Classification string    `json:"classification"`
	Categories     []string  `json:"categories"`
	Price          float64   `json:"price"`
	Quantity       int       `json:"quantity"`
	Images         []string  `json:"urlImages"`
	CompanyID      uuid.UUID `json:"companyId"`
	NameCompany    string    `json:"nameCompany"`
	CompanyType    string    `json:"companyType"`
	Province       string    `json:"province"`
	Municipality   string    `json:"municipality"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListItem flattens a product and its preloaded company into a catalog row.
func (p *Product) ListItem() ProductListItem {
	item := ProductListItem{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Classification: p.Classification,
		Categories:     []string(p.Categories),
		Price:          p.Price,
		Quantity:       p.Quantity,
		Images:         []string(p.Images),
		CompanyID:      p.CompanyID,
		CreatedAt:      p.CreatedAt,
	}
	if p.Company != nil {
		item.NameCompany = p.Company.Name
		item.CompanyType = p.Company.Type
		item.Province = p.Company.Province
		item.Municipality = p.Company.Municipality
		item.Address = p.Company.Address
	}
	return item
}

// ProductListItems maps products to catalog rows preserving order.
func ProductListItems(products []Product) []ProductListItem {
	items := make([]ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, products[i].ListItem())
	}
	return items
}

// MaxObservedPrice returns the highest price across the list, 0 when empty.
// Callers use it to initialize the price filter bounds.
func MaxObservedPrice(products []ProductListItem) float64 {
	max := 0.0
	for _, product := range products {
		if product.Price > max {
			max = product.Price
		}
	}
	return max
}
