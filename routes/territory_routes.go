package routes

import (
	"github.com/RonP3B/medisearch-backend/controllers/territory_controller"
	"github.com/gin-gonic/gin"
)

// SetupTerritoryRoutes wires the public territorial-division proxy used by
// the signup and filter forms.
func SetupTerritoryRoutes(rg *gin.RouterGroup) {
	territories := rg.Group("/territories")

	territories.GET("/provinces", territory_controller.GetProvinces)
	territories.GET("/provinces/:provinceCode/municipalities", territory_controller.GetMunicipalities)
}
