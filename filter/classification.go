package filter

// classificationEntry pairs a classification with its valid category set.
// Every product category must belong to the set of its classification.
type classificationEntry struct {
	classification string
	categories     []string
}

// Static table, mirrored by the frontend's filter drawers and product forms.
var classificationCategories = []classificationEntry{
	{"Analgésico", []string{"Tabletas", "Cápsulas", "Jarabe", "Gotas", "Supositorios"}},
	{"Antibiótico", []string{"Tabletas", "Cápsulas", "Suspensión", "Inyectable", "Crema"}},
	{"Antihistamínico", []string{"Tabletas", "Jarabe", "Gotas", "Spray nasal"}},
	{"Antiinflamatorio", []string{"Tabletas", "Cápsulas", "Gel", "Crema", "Inyectable"}},
	{"Antimicótico", []string{"Crema", "Tabletas", "Óvulos", "Polvo", "Esmalte"}},
	{"Antiácido", []string{"Tabletas", "Suspensión", "Polvo efervescente"}},
	{"Cardiovascular", []string{"Tabletas", "Cápsulas", "Gotas"}},
	{"Dermatológico", []string{"Crema", "Gel", "Loción", "Jabón", "Shampoo"}},
	{"Respiratorio", []string{"Jarabe", "Inhalador", "Spray nasal", "Tabletas"}},
	{"Vitaminas y suplementos", []string{"Tabletas", "Cápsulas", "Gomitas", "Polvo", "Jarabe"}},
	{"Equipo médico", []string{"Diagnóstico", "Ortopedia", "Primeros auxilios", "Cuidado personal"}},
}

// Classifications returns the fixed list of classifications in table order.
func Classifications() []string {
	names := make([]string, 0, len(classificationCategories))
	for _, entry := range classificationCategories {
		names = append(names, entry.classification)
	}
	return names
}

// CategoriesFor returns the valid category set for a classification. The
// second return is false for unknown classifications.
func CategoriesFor(classification string) ([]string, bool) {
	for _, entry := range classificationCategories {
		if entry.classification == classification {
			return entry.categories, true
		}
	}
	return nil, false
}

// ValidCategories reports whether every given category belongs to the
// classification's category set.
func ValidCategories(classification string, categories []string) bool {
	valid, ok := CategoriesFor(classification)
	if !ok {
		return false
	}
	for _, category := range categories {
		found := false
		for _, candidate := range valid {
			if candidate == category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
