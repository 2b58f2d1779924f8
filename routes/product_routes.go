package routes

import (
	"github.com/RonP3B/medisearch-backend/controllers/comment_controller"
	"github.com/RonP3B/medisearch-backend/controllers/product_controller"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes wires the catalog management and comment endpoints.
func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("/:id", product_controller.GetProductByID)
	}

	// Catalog management is restricted to company accounts
	managed := rg.Group("/products")
	managed.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	{
		managed.GET("", product_controller.GetMyProducts)
		managed.POST("", product_controller.CreateProduct)
		managed.PUT("", product_controller.EditProduct)
		managed.DELETE("/:id", product_controller.DeleteProduct)
	}

	comments := rg.Group("/comments")
	comments.Use(middleware.AuthMiddleware())
	{
		comments.POST("", comment_controller.AddComment)
		comments.POST("/replies", comment_controller.AddReply)
	}
}
