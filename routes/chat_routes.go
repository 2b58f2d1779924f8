package routes

import (
	"time"

	"github.com/RonP3B/medisearch-backend/controllers/chat_controller"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupChatRoutes wires the messaging endpoints. The list and detail
// endpoints are polled by clients, so they get a generous rate window.
func SetupChatRoutes(rg *gin.RouterGroup) {
	chats := rg.Group("/chats")
	chats.Use(middleware.AuthMiddleware())
	{
		chats.GET("", middleware.RateLimiter(120, time.Minute), chat_controller.GetChats)
		chats.GET("/:id", middleware.RateLimiter(120, time.Minute), chat_controller.GetChat)
		chats.POST("/messages", chat_controller.SendMessage)
	}
}
