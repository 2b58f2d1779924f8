package chat_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SendMessage godoc
// @Summary Send a chat message
// @Description Sends a text message or a file attachment to another user. The conversation is created on the first message between two parties.
// @Tags Chats
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse
// @Router /chats/messages [post]
func SendMessage(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid message form"))
		return
	}
	if req.IDReceiver == userID {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cannot send a message to yourself"))
		return
	}

	// Step 1: resolve the attachment, if any
	fileURL := ""
	if header, err := c.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read file"))
			return
		}
		defer file.Close()

		url, err := services.GetCloudinaryService().UploadFile(c.Request.Context(), file, header.Filename, "medisearch/chat")
		if err != nil {
			log.Printf("[chats.send] ERROR uploading file err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload file"))
			return
		}
		fileURL = url
	}
	if req.Content == "" && fileURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Message needs content or a file"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: the receiver must exist
	var receiver models.User
	err := config.Gorm.WithContext(ctx).Select("id").First(&receiver, "id = ?", req.IDReceiver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Receiver not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send message"))
		return
	}

	// Step 3: find or create the conversation, then append the message
	var message models.Message
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chat models.Chat
		err := tx.Where(
			"(starter_id = ? AND receiver_id = ?) OR (starter_id = ? AND receiver_id = ?)",
			userID, req.IDReceiver, req.IDReceiver, userID,
		).First(&chat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			chat = models.Chat{StarterID: userID, ReceiverID: req.IDReceiver}
			if err := tx.Create(&chat).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		message = models.Message{
			ChatID:   chat.ID,
			SenderID: userID,
			Content:  req.Content,
			Url:      fileURL,
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		// bump updated_at so the chat list sorts by activity
		return tx.Model(&chat).Update("updated_at", message.CreatedAt).Error
	})
	if err != nil {
		log.Printf("[chats.send] ERROR persisting message err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send message"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message sent successfully", message))
}
