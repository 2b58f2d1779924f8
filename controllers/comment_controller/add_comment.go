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

// AddComment godoc
// @Summary Comment on a product
// @Description Creates a top-level comment on a product
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param comment body models.CommentRequest true "Comment payload"
// @Success 201 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /comments [post]
func AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid comment payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: the product must exist before attaching a comment
	var product models.Product
	err := config.Gorm.WithContext(ctx).Select("id").First(&product, "id = ?", req.ProductID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add comment"))
		return
	}

	// Step 2: persist and return the comment with its author
	comment := models.Comment{
		ProductID: req.ProductID,
		UserID:    userID,
		Content:   req.Content,
	}
	if err := config.Gorm.WithContext(ctx).Create(&comment).Error; err != nil {
		log.Printf("[comments.add] ERROR creating comment err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add comment"))
		return
	}
	if err := config.Gorm.WithContext(ctx).Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		log.Printf("[comments.add] ERROR reloading comment err=%v", err)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Comment added successfully", comment))
}
