package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is a two-party conversation. Starter is the user who sent the first
// message, Receiver the other side.
type Chat struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StarterID  uuid.UUID `json:"starterId" gorm:"type:uuid;not null;index:idx_chats_parties"`
	ReceiverID uuid.UUID `json:"receiverId" gorm:"type:uuid;not null;index:idx_chats_parties"`
	Starter    *User     `json:"-" gorm:"foreignKey:StarterID;references:ID"`
	Receiver   *User     `json:"-" gorm:"foreignKey:ReceiverID;references:ID"`
	Messages   []Message `json:"messages,omitempty" gorm:"foreignKey:ChatID"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (ch *Chat) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Chat) TableName() string {
	return "chats"
}

// Message is a single chat entry, either text content or an uploaded file URL.
type Message struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ChatID    uuid.UUID `json:"chatId" gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `json:"senderId" gorm:"type:uuid;not null"`
	Content   string    `json:"content"`
	Url       string    `json:"url"`
	CreatedAt time.Time `json:"date" gorm:"autoCreateTime;index"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest binds the multipart send form: text content or a file,
// never both.
type SendMessageRequest struct {
	IDReceiver uuid.UUID `form:"idReceiver" binding:"required"`
	Content    string    `form:"content"`
}

// ChatListItem is one row of the chat list: the counterpart's display data
// plus the latest message.
type ChatListItem struct {
	ID          uuid.UUID `json:"id"`
	ReceiverID  uuid.UUID `json:"receiverId"`
	Name        string    `json:"name"`
	UrlImage    string    `json:"urlImage"`
	LastMessage string    `json:"lastMessage"`
	Date        time.Time `json:"date"`
}

// ChatResponse is a chat with its messages, newest first.
type ChatResponse struct {
	ID         uuid.UUID `json:"id"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Name       string    `json:"name"`
	UrlImage   string    `json:"urlImage"`
	Messages   []Message `json:"messages"`
}
