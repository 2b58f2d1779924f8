package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a top-level product comment with threaded replies.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Content   string    `json:"content" gorm:"not null"`
	Replies   []Reply   `json:"replies,omitempty" gorm:"foreignKey:CommentID"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (cm *Comment) BeforeCreate(tx *gorm.DB) error {
	if cm.ID == uuid.Nil {
		cm.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Comment) TableName() string {
	return "comments"
}

type Reply struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CommentID uuid.UUID `json:"commentId" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Reply) TableName() string {
	return "replies"
}

type CommentRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Content   string    `json:"content" binding:"required"`
}

type ReplyRequest struct {
	CommentID uuid.UUID `json:"commentId" binding:"required"`
	Content   string    `json:"content" binding:"required"`
}
