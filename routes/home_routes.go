package routes

import (
	"github.com/RonP3B/medisearch-backend/controllers/favorite_controller"
	"github.com/RonP3B/medisearch-backend/controllers/home_controller"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupHomeRoutes wires the storefront: home feeds, catalog search and
// favorites.
func SetupHomeRoutes(rg *gin.RouterGroup) {
	home := rg.Group("/home")

	// Classification table needs no session
	home.GET("/classifications", home_controller.GetClassifications)

	protected := home.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("", home_controller.GetHome)
		protected.GET("/client", home_controller.GetClientHome)
		protected.GET("/products", home_controller.SearchProducts)
		protected.GET("/companies", home_controller.SearchCompanies)
		protected.GET("/companies/:id", home_controller.GetCompanyByID)
	}

	favorites := rg.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	{
		favorites.GET("/products", favorite_controller.GetFavoriteProducts)
		favorites.POST("/products", favorite_controller.AddFavoriteProduct)
		favorites.DELETE("/products/:id", favorite_controller.RemoveFavoriteProduct)

		favorites.GET("/companies", favorite_controller.GetFavoriteCompanies)
		favorites.POST("/companies", favorite_controller.AddFavoriteCompany)
		favorites.DELETE("/companies/:id", favorite_controller.RemoveFavoriteCompany)
	}
}
