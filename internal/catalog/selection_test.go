package catalog

import (
	"testing"

	"github.com/alefmoda/alef-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog builds the two-product catalog of the acceptance scenario:
// one garment (shemah_israel / modelo_1 / blanco / masculino) and one
// accessory (talith / masculino).
func testCatalog() []models.Product {
	return Normalize(
		[]models.GarmentRecord{sampleGarment()},
		[]models.AccessoryRecord{sampleAccessory()},
	)
}

// multiGenderCatalog adds a second gender so nothing auto-selects.
func multiGenderCatalog() []models.Product {
	male := sampleGarment()
	female := sampleGarment()
	female.ID = 2
	female.Gender = "femenino"
	female.Color = "negro"
	female.Model = "modelo_2"
	return Normalize([]models.GarmentRecord{male, female}, []models.AccessoryRecord{sampleAccessory()})
}

func assertCascadeInvariant(t *testing.T, sel Selection) {
	t.Helper()
	if sel.ProductType != "" {
		assert.NotEmpty(t, sel.Gender, "productType set without gender")
	}
	if sel.Edition != "" {
		assert.NotEmpty(t, sel.ProductType, "edition set without productType")
	}
	if sel.Model != "" {
		assert.NotEmpty(t, sel.Edition, "model set without edition")
	}
	if sel.Color != "" {
		assert.NotEmpty(t, sel.Model, "color set without model")
	}
}

func TestEngine_CascadeInvariant(t *testing.T) {
	engine := NewEngine(multiGenderCatalog())

	steps := []struct {
		level Level
		value string
	}{
		{LevelGender, "masculino"},
		{LevelType, "camisa"},
		{LevelEdition, "shemah_israel"},
		{LevelModel, "modelo_1"},
		{LevelColor, "blanco"},
		{LevelEdition, "shemah_israel"}, // re-set mid level
		{LevelGender, "femenino"},
		{LevelModel, "modelo_2"}, // ignored: no edition selected
		{LevelGender, ""},        // explicit clear
		{LevelColor, "negro"},    // ignored: nothing above is set
	}

	for _, step := range steps {
		engine.Apply(step.level, step.value)
		assertCascadeInvariant(t, engine.Selection())
	}
}

func TestEngine_SettingHigherLevelResetsLowerLevels(t *testing.T) {
	engine := NewEngine(multiGenderCatalog())
	engine.Apply(LevelGender, "masculino")
	engine.Apply(LevelType, "camisa")
	engine.Apply(LevelEdition, "shemah_israel")
	engine.Apply(LevelModel, "modelo_1")
	engine.Apply(LevelColor, "blanco")

	engine.Apply(LevelEdition, "shemah_israel")
	sel := engine.Selection()
	assert.Empty(t, sel.Model, "model must reset on edition change")
	assert.Empty(t, sel.Color, "color must reset on edition change")
	assert.Equal(t, "masculino", sel.Gender, "gender must survive a lower-level change")
}

func TestEngine_AutoSelectsSingletonGender(t *testing.T) {
	engine := NewEngine(testCatalog())
	// Exactly one gender exists across all records: selected without any
	// explicit mutator call.
	assert.Equal(t, "masculino", engine.Selection().Gender)
}

func TestEngine_AutoSelectsSingletonType(t *testing.T) {
	products := Normalize([]models.GarmentRecord{sampleGarment()}, nil)
	engine := NewEngine(products)

	sel := engine.Selection()
	assert.Equal(t, "masculino", sel.Gender)
	assert.Equal(t, "camisa", sel.ProductType)
}

func TestEngine_AutoSelectDoesNotFireAfterExplicitClear(t *testing.T) {
	engine := NewEngine(testCatalog())
	require.Equal(t, "masculino", engine.Selection().Gender)

	engine.Apply(LevelGender, "")
	assert.Empty(t, engine.Selection().Gender, "explicit clear must stick")
}

func TestEngine_AvailableTypes(t *testing.T) {
	engine := NewEngine(multiGenderCatalog())

	assert.Empty(t, engine.AvailableTypes(), "no types before a gender is chosen")

	engine.Apply(LevelGender, "masculino")
	assert.ElementsMatch(t, []string{"camisa", "articulo"}, engine.AvailableTypes())

	engine.Apply(LevelGender, "femenino")
	assert.Equal(t, []string{"camisa"}, engine.AvailableTypes())
}

func TestEngine_ScenarioDrillDown(t *testing.T) {
	engine := NewEngine(testCatalog())

	engine.Apply(LevelGender, "masculino")
	engine.Apply(LevelType, "camisa")
	engine.Apply(LevelEdition, "shemah_israel")
	assert.Equal(t, []string{"modelo_1"}, engine.AvailableModels())

	engine.Apply(LevelModel, "modelo_1")
	assert.Equal(t, []string{"blanco"}, engine.AvailableColors())
}

func TestEngine_CoarseModelAndColorVisibility(t *testing.T) {
	engine := NewEngine(multiGenderCatalog())
	engine.Apply(LevelGender, "masculino")
	engine.Apply(LevelType, "camisa")

	// Before an edition is chosen the fan-out is every model and color
	// reachable under the gender.
	assert.Equal(t, []string{"modelo_1"}, engine.AvailableModels())
	assert.Equal(t, []string{"blanco"}, engine.AvailableColors())
}

func TestEngine_CustomEditionShortCircuit(t *testing.T) {
	engine := NewEngine(testCatalog())
	engine.Apply(LevelGender, "masculino")
	engine.Apply(LevelType, "camisa")
	engine.Apply(LevelEdition, "shemah_israel")
	engine.Apply(LevelModel, "modelo_1")
	engine.Apply(LevelColor, "blanco")

	engine.Apply(LevelEdition, EditionCustom)

	assert.Empty(t, engine.AvailableModels())
	assert.Empty(t, engine.AvailableColors())
	assert.Empty(t, engine.DisplayedMedia())
	sel := engine.Selection()
	assert.Empty(t, sel.Model)
	assert.Empty(t, sel.Color)
}

func TestEngine_DisplayedMediaGarments(t *testing.T) {
	engine := NewEngine(multiGenderCatalog())
	engine.Apply(LevelGender, "masculino")
	engine.Apply(LevelType, "camisa")

	media := engine.DisplayedMedia()
	require.NotEmpty(t, media)

	seen := map[string]bool{}
	for i, m := range media {
		assert.False(t, seen[m.Source], "duplicate media source")
		seen[m.Source] = true
		if i > 0 {
			assert.GreaterOrEqual(t, m.Order, media[i-1].Order)
		}
		assert.Equal(t, "masculino", m.Variant.Gender)
	}

	// Narrowing by color keeps only exact matches.
	engine.Apply(LevelEdition, "shemah_israel")
	engine.Apply(LevelModel, "modelo_1")
	engine.Apply(LevelColor, "blanco")
	for _, m := range engine.DisplayedMedia() {
		assert.Equal(t, "blanco", m.Variant.Color)
	}
}

func TestEngine_DisplayedProductsAccessories(t *testing.T) {
	engine := NewEngine(multiGenderCatalog())
	engine.Apply(LevelGender, "masculino")
	engine.Apply(LevelType, "articulo")

	prods := engine.DisplayedProducts()
	require.Len(t, prods, 1)
	assert.Equal(t, "talith", prods[0].Name)
	assert.Empty(t, engine.DisplayedMedia(), "garment media branch must stay empty for accessories")

	// Accessories don't exist for the second gender: the grid is empty.
	engine.Apply(LevelGender, "femenino")
	engine.Apply(LevelType, "articulo")
	assert.Empty(t, engine.DisplayedProducts())
}

func TestEngine_EmptyCatalog(t *testing.T) {
	engine := NewEngine(nil)

	assert.Empty(t, engine.AvailableGenders())
	assert.Empty(t, engine.AvailableTypes())
	assert.Empty(t, engine.DisplayedMedia())
	assert.Empty(t, engine.Selection().Gender)

	// Mutators stay total over an empty catalog.
	engine.Apply(LevelGender, "masculino")
	assert.Equal(t, "masculino", engine.Selection().Gender)
}

func TestResolvePrice(t *testing.T) {
	product := testCatalog()[0]
	variant := product.Variants[0]

	assert.Equal(t, 35.4, ResolvePrice(product, nil, false))
	assert.Equal(t, variant.Price, ResolvePrice(product, &variant, false))
	assert.Equal(t, variant.Price+TzitziyotPrice, ResolvePrice(product, &variant, true))
}
