package comment_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddReply godoc
// @Summary Reply to a comment
// @Description Creates a reply under an existing product comment
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reply body models.ReplyRequest true "Reply payload"
// @Success 201 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /comments/replies [post]
func AddReply(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid reply payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var comment models.Comment
	err := config.Gorm.WithContext(ctx).Select("id").First(&comment, "id = ?", req.CommentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Comment not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add reply"))
		return
	}

	reply := models.Reply{
		CommentID: req.CommentID,
		UserID:    userID,
		Content:   req.Content,
	}
	if err := config.Gorm.WithContext(ctx).Create(&reply).Error; err != nil {
		log.Printf("[comments.reply] ERROR creating reply err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add reply"))
		return
	}
	if err := config.Gorm.WithContext(ctx).Preload("User").First(&reply, "id = ?", reply.ID).Error; err != nil {
		log.Printf("[comments.reply] ERROR reloading reply err=%v", err)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reply added successfully", reply))
}
