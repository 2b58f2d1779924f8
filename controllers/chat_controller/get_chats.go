package chat_controller

import (
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetChats godoc
// @Summary List the caller's chats
// @Description Returns one row per conversation with the counterpart's display data and the latest message, most recent conversation first
// @Tags Chats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /chats [get]
func GetChats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var chats []models.Chat
	err := config.Gorm.WithContext(ctx).
		Where("starter_id = ? OR receiver_id = ?", userID, userID).
		Preload("Starter").
		Preload("Starter.Company").
		Preload("Receiver").
		Preload("Receiver.Company").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("updated_at DESC").
		Find(&chats).Error
	if err != nil {
		log.Printf("[chats.list] ERROR loading chats err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load chats"))
		return
	}

	rows := make([]models.ChatListItem, 0, len(chats))
	for i := range chats {
		chat := &chats[i]
		other := counterpart(chat, userID)
		name, urlImage := displayName(other)

		row := models.ChatListItem{
			ID:       chat.ID,
			Name:     name,
			UrlImage: urlImage,
			Date:     chat.UpdatedAt,
		}
		if other != nil {
			row.ReceiverID = other.ID
		}
		if len(chat.Messages) > 0 {
			latest := chat.Messages[0]
			row.LastMessage = latest.Content
			if row.LastMessage == "" && latest.Url != "" {
				row.LastMessage = "Archivo adjunto"
			}
			row.Date = latest.CreatedAt
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Chats retrieved successfully", rows))
}
