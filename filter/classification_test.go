package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifications_TableOrder(t *testing.T) {
	names := Classifications()

	require.NotEmpty(t, names)
	assert.Equal(t, "Analgésico", names[0])
	assert.Len(t, names, len(classificationCategories))
}

func TestCategoriesFor(t *testing.T) {
	categories, ok := CategoriesFor("Analgésico")
	require.True(t, ok)
	assert.Contains(t, categories, "Tabletas")
	assert.Contains(t, categories, "Jarabe")

	_, ok = CategoriesFor("No existe")
	assert.False(t, ok)
}

func TestValidCategories(t *testing.T) {
	assert.True(t, ValidCategories("Analgésico", []string{"Tabletas", "Jarabe"}))
	assert.False(t, ValidCategories("Analgésico", []string{"Inhalador"}))
	assert.False(t, ValidCategories("No existe", []string{"Tabletas"}))
	assert.True(t, ValidCategories("Analgésico", nil))
}

func TestSetClassification_ClearsSelectedCategories(t *testing.T) {
	state := NewState()
	state.SetClassification("Analgésico")
	state.SetCategories([]string{"Tabletas"})

	state.SetClassification("Respiratorio")

	assert.Empty(t, state.Categories())
	assert.Equal(t, "Respiratorio", state.Classification())

	available := state.AvailableCategories()
	assert.Contains(t, available, "Inhalador")
}

func TestSetClassification_SameValueKeepsCategories(t *testing.T) {
	state := NewState()
	state.SetClassification("Analgésico")
	state.SetCategories([]string{"Tabletas"})

	state.SetClassification("Analgésico")

	assert.Equal(t, []string{"Tabletas"}, state.Categories())
}
