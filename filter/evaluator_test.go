package filter

import (
	"testing"

	"github.com/RonP3B/medisearch-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.ProductListItem {
	return []models.ProductListItem{
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Name:           "Paracetamol",
			Price:          50,
			Quantity:       10,
			Classification: "Analgésico",
			Categories:     []string{"Tabletas"},
			NameCompany:    "Farmacia Central",
			Province:       "Santo Domingo",
			Municipality:   "Santo Domingo Este",
			Address:        "Av. Independencia 55",
		},
		{
			ID:             uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Name:           "Ibuprofeno",
			Price:          150,
			Quantity:       0,
			Classification: "Analgésico",
			Categories:     []string{"Jarabe"},
			NameCompany:    "Laboratorio Norte",
			Province:       "Santiago",
			Municipality:   "Santiago de los Caballeros",
			Address:        "Calle del Sol 12",
		},
	}
}

func ids(items []models.ProductListItem) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilterProducts_DefaultsAreIdentity(t *testing.T) {
	products := sampleProducts()
	state := NewState()
	state.SetMaxPrice(models.MaxObservedPrice(products))
	state.SetPriceRange(1, state.MaxPrice())

	filtered := state.FilterProducts(products)

	require.Len(t, filtered, len(products))
	assert.Equal(t, ids(products), ids(filtered))
}

func TestFilterProducts_PriceRange(t *testing.T) {
	state := NewState()
	state.SetPriceRange(1, 100)

	filtered := state.FilterProducts(sampleProducts())

	require.Len(t, filtered, 1)
	assert.Equal(t, "Paracetamol", filtered[0].Name)
}

func TestFilterProducts_PriceBoundsAreInclusive(t *testing.T) {
	state := NewState()
	state.SetPriceRange(50, 150)

	filtered := state.FilterProducts(sampleProducts())

	// Both items sit exactly on a bound.
	require.Len(t, filtered, 2)
}

func TestFilterProducts_UninitializedPriceIsInactive(t *testing.T) {
	state := NewState()

	filtered := state.FilterProducts(sampleProducts())

	assert.Len(t, filtered, 2)
}

func TestFilterProducts_QuantityThreshold(t *testing.T) {
	state := NewState()
	state.SetQuantity(5)

	filtered := state.FilterProducts(sampleProducts())

	require.Len(t, filtered, 1)
	assert.Equal(t, "Paracetamol", filtered[0].Name)
}

func TestFilterProducts_ZeroQuantityThresholdPassesAll(t *testing.T) {
	state := NewState()
	state.SetQuantity(0)

	assert.Len(t, state.FilterProducts(sampleProducts()), 2)
}

func TestFilterProducts_CategorySelection(t *testing.T) {
	state := NewState()
	state.SetCategories([]string{"Jarabe"})

	filtered := state.FilterProducts(sampleProducts())

	require.Len(t, filtered, 1)
	assert.Equal(t, "Ibuprofeno", filtered[0].Name)
}

func TestFilterProducts_CategoryUsesOrWithinDimension(t *testing.T) {
	products := []models.ProductListItem{
		{Name: "Multi", Categories: []string{"Tabletas", "Jarabe"}},
	}
	state := NewState()
	state.SetCategories([]string{"Jarabe", "Gotas"})

	// {Tabletas, Jarabe} ∩ {Jarabe, Gotas} is non-empty.
	assert.Len(t, state.FilterProducts(products), 1)
}

func TestFilterProducts_MissingCategoriesFailsActivePredicate(t *testing.T) {
	products := []models.ProductListItem{{Name: "Sin categorías"}}

	state := NewState()
	state.SetCategories([]string{"Tabletas"})
	assert.Empty(t, state.FilterProducts(products))

	// Inactive category filter still passes the same item.
	state.SetCategories(nil)
	assert.Len(t, state.FilterProducts(products), 1)
}

func TestFilterProducts_NameMatchIsCaseInsensitiveSubstring(t *testing.T) {
	state := NewState()
	state.SetProductName("paraceta")

	filtered := state.FilterProducts(sampleProducts())

	require.Len(t, filtered, 1)
	assert.Equal(t, "Paracetamol", filtered[0].Name)
}

func TestFilterProducts_CompanyNameMatchesNameCompany(t *testing.T) {
	state := NewState()
	state.SetCompanyName("laboratorio")

	filtered := state.FilterProducts(sampleProducts())

	require.Len(t, filtered, 1)
	assert.Equal(t, "Ibuprofeno", filtered[0].Name)
}

func TestFilterProducts_Conjunctivity(t *testing.T) {
	products := sampleProducts()

	priceOnly := NewState()
	priceOnly.SetPriceRange(1, 100)

	quantityOnly := NewState()
	quantityOnly.SetQuantity(5)

	both := NewState()
	both.SetPriceRange(1, 100)
	both.SetQuantity(5)

	// Result of applying both filters equals the intersection of the
	// individual results.
	intersection := make(map[uuid.UUID]bool)
	for _, item := range priceOnly.FilterProducts(products) {
		intersection[item.ID] = true
	}
	combined := both.FilterProducts(products)
	for _, item := range combined {
		assert.True(t, intersection[item.ID])
	}

	quantityIDs := ids(quantityOnly.FilterProducts(products))
	assert.Subset(t, quantityIDs, ids(combined))
}

func TestFilterProducts_SubsetAndIdempotence(t *testing.T) {
	products := sampleProducts()
	state := NewState()
	state.SetClassification("Analgésico")
	state.SetPriceRange(1, 200)

	first := state.FilterProducts(products)
	second := state.FilterProducts(products)

	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(first), len(products))
	assert.Subset(t, ids(products), ids(first))
}

func TestFilterCompanies_ProvinceExactMatch(t *testing.T) {
	companies := []models.Company{
		{Name: "Farmacia Central", Province: "Santo Domingo"},
		{Name: "Farmacia del Cibao", Province: "Santiago"},
	}

	state := NewState()
	state.SetProvince("Santo Domingo")
	// Product-only dimensions must not affect company mode.
	state.SetQuantity(99)
	state.SetPriceRange(500, 1000)
	state.SetClassification("Analgésico")

	filtered := state.FilterCompanies(companies)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Farmacia Central", filtered[0].Name)
}

func TestFilterCompanies_MunicipalityMembership(t *testing.T) {
	companies := []models.Company{
		{Name: "A", Municipality: "Santo Domingo Este"},
		{Name: "B", Municipality: "Los Alcarrizos"},
		{Name: "C", Municipality: "Santiago de los Caballeros"},
	}

	state := NewState()
	state.SetMunicipalities([]string{"Santo Domingo Este", "Los Alcarrizos"})

	filtered := state.FilterCompanies(companies)

	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].Name)
	assert.Equal(t, "B", filtered[1].Name)
}

func TestClear_RestoresDefaultsAndRefilters(t *testing.T) {
	products := sampleProducts()

	state := NewState()
	state.SetMaxPrice(models.MaxObservedPrice(products))
	state.SetPriceRange(1, state.MaxPrice())
	state.SetQuantity(5)
	state.SetCategories([]string{"Jarabe"})

	require.Empty(t, state.FilterProducts(products))

	state.Clear()

	assert.Zero(t, state.Quantity())
	assert.Empty(t, state.Categories())
	price, ok := state.Price()
	require.True(t, ok)
	assert.Equal(t, PriceRange{Min: 1, Max: 150}, price)

	filtered := state.FilterProducts(products)
	assert.Equal(t, ids(products), ids(filtered))
}
