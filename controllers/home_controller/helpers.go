package home_controller

import (
	"strconv"

	"github.com/RonP3B/medisearch-backend/filter"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// stateFromQuery builds the filter state from the request's query string.
// Every dimension is optional; absent parameters leave the predicate
// inactive. The price range activates only when at least one bound arrives,
// defaulting the other end to [1, maxObserved].
func stateFromQuery(c *gin.Context, maxObserved float64) *filter.State {
	state := filter.NewState()
	state.SetMaxPrice(maxObserved)

	state.SetProductName(c.Query("name"))
	state.SetCompanyName(c.Query("company"))
	state.SetAddress(c.Query("address"))
	state.SetProvince(c.Query("province"))
	state.SetMunicipalities(c.QueryArray("municipality"))
	state.SetClassification(c.Query("classification"))
	state.SetCategories(c.QueryArray("category"))

	if quantity, err := strconv.Atoi(c.Query("quantity")); err == nil {
		state.SetQuantity(quantity)
	}

	minRaw, hasMin := c.GetQuery("minPrice")
	maxRaw, hasMax := c.GetQuery("maxPrice")
	if hasMin || hasMax {
		min := 1.0
		max := maxObserved
		if parsed, err := strconv.ParseFloat(minRaw, 64); err == nil {
			min = parsed
		}
		if parsed, err := strconv.ParseFloat(maxRaw, 64); err == nil {
			max = parsed
		}
		state.SetPriceRange(min, max)
	}

	return state
}

// activeCompanies scopes a query to listed companies, optionally of one type.
func activeCompanies(db *gorm.DB, companyType string) *gorm.DB {
	query := db.Where("active = ?", true)
	if companyType != "" {
		query = query.Where("type = ?", companyType)
	}
	return query
}

// opposingType returns the marketplace counterpart of a company type.
// Pharmacies browse laboratories and vice versa.
func opposingType(companyType string) string {
	if companyType == models.CompanyTypePharmacy {
		return models.CompanyTypeLaboratory
	}
	return models.CompanyTypePharmacy
}
