package filter

import (
	"strings"

	"github.com/RonP3B/medisearch-backend/models"
)

// FilterCompanies returns the companies matching every active filter
// dimension, preserving input order. Inactive dimensions (empty strings or
// sets) always pass.
func (s *State) FilterCompanies(companies []models.Company) []models.Company {
	matched := make([]models.Company, 0, len(companies))
	for _, company := range companies {
		if s.matchesLocation(company.Name, company.Address, company.Province, company.Municipality) {
			matched = append(matched, company)
		}
	}
	return matched
}

// FilterProducts applies the company-level predicates against the product's
// owning company fields, then the product-only predicates. Stable and purely
// conjunctive; category selection is the one OR-within-dimension predicate.
func (s *State) FilterProducts(products []models.ProductListItem) []models.ProductListItem {
	matched := make([]models.ProductListItem, 0, len(products))
	for _, product := range products {
		if !s.matchesLocation(product.NameCompany, product.Address, product.Province, product.Municipality) {
			continue
		}
		if !s.matchesProduct(product) {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

func (s *State) matchesLocation(companyName, address, province, municipality string) bool {
	if s.companyName != "" && !containsFold(companyName, s.companyName) {
		return false
	}
	if s.address != "" && !containsFold(address, s.address) {
		return false
	}
	if s.province != "" && province != s.province {
		return false
	}
	if len(s.municipalities) > 0 && !containsString(s.municipalities, municipality) {
		return false
	}
	return true
}

func (s *State) matchesProduct(product models.ProductListItem) bool {
	if s.productName != "" && !containsFold(product.Name, s.productName) {
		return false
	}
	if len(s.categories) > 0 && !intersects(product.Categories, s.categories) {
		return false
	}
	if s.price != nil && (product.Price < s.price.Min || product.Price > s.price.Max) {
		return false
	}
	if s.quantity > 0 && product.Quantity < s.quantity {
		return false
	}
	if s.classification != "" && product.Classification != s.classification {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// intersects reports whether the lists share at least one element. A nil
// entity list never intersects, so entities missing categories simply fail
// the predicate when it is active.
func intersects(entityValues, selected []string) bool {
	for _, value := range entityValues {
		if containsString(selected, value) {
			return true
		}
	}
	return false
}
