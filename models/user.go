package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. SuperAdmin owns a company account, Admin is an invited
// employee of a company, Client is an end user without a company.
const (
	RoleSuperAdmin = "SuperAdmin"
	RoleAdmin      = "Admin"
	RoleClient     = "Client"
)

type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName    string     `json:"firstName" gorm:"not null"`
	LastName     string     `json:"lastName" gorm:"not null"`
	Email        string     `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"not null;check:role IN ('SuperAdmin', 'Admin', 'Client');index"`
	Phone        string     `json:"phone"`
	Province     string     `json:"province"`
	Municipality string     `json:"municipality"`
	Address      string     `json:"address"`
	UrlImage     string     `json:"urlImage"`
	CompanyID    *uuid.UUID `json:"companyId,omitempty" gorm:"type:uuid;index"`
	Company      *Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// RefreshSession stores one refresh token per login. Rotated on every
// refresh, removed on logout.
type RefreshSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (s *RefreshSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (RefreshSession) TableName() string {
	return "refresh_sessions"
}

// PasswordReset holds a pending recovery code for an account.
type PasswordReset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"not null"`
	Confirmed bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (r *PasswordReset) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserRequest binds the multipart client signup form.
type UserRequest struct {
	FirstName    string `form:"firstName" binding:"required"`
	LastName     string `form:"lastName" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Password     string `form:"password" binding:"required,min=8"`
	Phone        string `form:"phone" binding:"required"`
	Province     string `form:"province" binding:"required"`
	Municipality string `form:"municipality" binding:"required"`
	Address      string `form:"address" binding:"required"`
}

// EmployeeRequest registers an Admin under the caller's company.
type EmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone" binding:"required"`
}

// UpdateProfileRequest carries the editable profile fields of the logged
// user. The avatar arrives as an optional file part.
type UpdateProfileRequest struct {
	FirstName    *string `form:"firstName"`
	LastName     *string `form:"lastName"`
	Phone        *string `form:"phone"`
	Province     *string `form:"province"`
	Municipality *string `form:"municipality"`
	Address      *string `form:"address"`
}

type FindUserResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ChangePasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type AuthResponse struct {
	JwToken string       `json:"jwToken"`
	User    UserResponse `json:"user"`
}

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Phone        string     `json:"phone"`
	Province     string     `json:"province"`
	Municipality string     `json:"municipality"`
	Address      string     `json:"address"`
	UrlImage     string     `json:"urlImage"`
	CompanyID    *uuid.UUID `json:"companyId,omitempty"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		Phone:        u.Phone,
		Province:     u.Province,
		Municipality: u.Municipality,
		Address:      u.Address,
		UrlImage:     u.UrlImage,
		CompanyID:    u.CompanyID,
	}
}
