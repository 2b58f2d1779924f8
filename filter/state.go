package filter

// PriceRange is an inclusive [Min, Max] price window.
type PriceRange struct {
	Min float64
	Max float64
}

// State holds the live value of every filter dimension. Setters replace the
// value as-is; no validation happens here, out-of-range values simply produce
// empty result sets downstream.
type State struct {
	productName    string
	companyName    string
	address        string
	province       string
	municipalities []string
	classification string
	categories     []string
	quantity       int

	// price stays nil until the caller establishes bounds via SetPriceRange
	// or Clear. A nil range means the price predicate is inactive.
	price    *PriceRange
	maxPrice float64
}

// NewState returns a State with every dimension at its zero value.
func NewState() *State {
	return &State{}
}

func (s *State) SetProductName(name string) { s.productName = name }
func (s *State) SetCompanyName(name string) { s.companyName = name }
func (s *State) SetAddress(address string)  { s.address = address }
func (s *State) SetProvince(province string) {
	s.province = province
}

func (s *State) SetMunicipalities(municipalities []string) {
	s.municipalities = municipalities
}

// SetClassification replaces the selected classification. Changing it drops
// any selected categories so they always belong to the current
// classification's category set.
func (s *State) SetClassification(classification string) {
	if classification != s.classification {
		s.categories = nil
	}
	s.classification = classification
}

func (s *State) SetCategories(categories []string) { s.categories = categories }
func (s *State) SetQuantity(minimum int)           { s.quantity = minimum }

// SetMaxPrice records the highest observed price. Callers compute it from the
// fetched list (0 for an empty list) and usually follow up with
// SetPriceRange(1, max).
func (s *State) SetMaxPrice(max float64) { s.maxPrice = max }

func (s *State) SetPriceRange(min, max float64) {
	s.price = &PriceRange{Min: min, Max: max}
}

// Clear resets every dimension to its zero value. The price range is restored
// to [1, maxPrice] using the most recently recorded maximum.
func (s *State) Clear() {
	s.productName = ""
	s.companyName = ""
	s.address = ""
	s.province = ""
	s.municipalities = nil
	s.classification = ""
	s.categories = nil
	s.quantity = 0
	s.price = &PriceRange{Min: 1, Max: s.maxPrice}
}

func (s *State) ProductName() string      { return s.productName }
func (s *State) CompanyName() string      { return s.companyName }
func (s *State) Address() string          { return s.address }
func (s *State) Province() string         { return s.province }
func (s *State) Municipalities() []string { return s.municipalities }
func (s *State) Classification() string   { return s.classification }
func (s *State) Categories() []string     { return s.categories }
func (s *State) Quantity() int            { return s.quantity }
func (s *State) MaxPrice() float64        { return s.maxPrice }

// Price returns the current range and whether bounds were ever established.
func (s *State) Price() (PriceRange, bool) {
	if s.price == nil {
		return PriceRange{}, false
	}
	return *s.price, true
}

// AvailableCategories returns the category set of the selected
// classification, or nil when none is selected.
func (s *State) AvailableCategories() []string {
	if s.classification == "" {
		return nil
	}
	categories, _ := CategoriesFor(s.classification)
	return categories
}
