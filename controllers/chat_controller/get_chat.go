package chat_controller

import (
	"errors"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetChat godoc
// @Summary Get a conversation
// @Description Returns a chat the caller belongs to, messages newest first
// @Tags Chats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /chats/{id} [get]
func GetChat(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid chat id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var chat models.Chat
	err = config.Gorm.WithContext(ctx).
		Where("id = ? AND (starter_id = ? OR receiver_id = ?)", chatID, userID, userID).
		Preload("Starter").
		Preload("Starter.Company").
		Preload("Receiver").
		Preload("Receiver.Company").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Chat not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load chat"))
		return
	}

	other := counterpart(&chat, userID)
	name, urlImage := displayName(other)
	response := models.ChatResponse{
		ID:       chat.ID,
		Name:     name,
		UrlImage: urlImage,
		Messages: chat.Messages,
	}
	if other != nil {
		response.ReceiverID = other.ID
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Chat retrieved successfully", response))
}
