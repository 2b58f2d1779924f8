package territory_controller

import (
	"log"
	"net/http"
	"os"

	territory_cache "github.com/RonP3B/medisearch-backend/cache"
	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/territorial"
	"github.com/gin-gonic/gin"
)

var territoriesClient = territorial.NewClient(os.Getenv("TERRITORIES_BASE_URL"))

// GetProvinces godoc
// @Summary List provinces
// @Description Returns the province list from the territorial-division service, cached server-side
// @Tags Territories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /territories/provinces [get]
func GetProvinces(c *gin.Context) {
	if provinces, ok := territory_cache.GetProvinces(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Provinces retrieved successfully", provinces))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	provinces, err := territoriesClient.GetProvinces(ctx)
	if err != nil {
		log.Printf("[territories.provinces] ERROR fetching provinces err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load provinces"))
		return
	}
	territory_cache.SetProvinces(provinces)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provinces retrieved successfully", provinces))
}

// GetMunicipalities godoc
// @Summary List municipalities of a province
// @Tags Territories
// @Produce json
// @Param provinceCode path string true "Province code"
// @Success 200 {object} models.ApiResponse
// @Router /territories/provinces/{provinceCode}/municipalities [get]
func GetMunicipalities(c *gin.Context) {
	provinceCode := c.Param("provinceCode")
	if provinceCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Province code is required"))
		return
	}

	if municipalities, ok := territory_cache.GetMunicipalities(provinceCode); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Municipalities retrieved successfully", municipalities))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	municipalities, err := territoriesClient.GetProvinceMunicipalities(ctx, provinceCode)
	if err != nil {
		log.Printf("[territories.municipalities] ERROR fetching municipalities province=%s err=%v", provinceCode, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load municipalities"))
		return
	}
	territory_cache.SetMunicipalities(provinceCode, municipalities)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Municipalities retrieved successfully", municipalities))
}
