package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

func TestBuilderCategorySharedAcrossTraders(t *testing.T) {
	b := NewBuilder()

	first := b.Category("Weapons")
	second := b.Category("Weapons") // second trader references the same name
	other := b.Category("Food")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, b.Categories(), 2)
}

func TestBuilderAddProduct(t *testing.T) {
	b := NewBuilder()
	catID := b.Category("Weapons")

	akID := b.AddProduct(catID, domain.Product{ClassName: "AK74", BuyPrice: 3000})
	m4ID := b.AddProduct(catID, domain.Product{ClassName: "M4A1", BuyPrice: 4000})

	assert.Equal(t, "prod_ak74_000", akID)
	assert.Equal(t, "prod_m4a1_000", m4ID)

	require.Len(t, b.Categories(), 1)
	assert.Equal(t, []string{akID, m4ID}, b.Categories()[0].ProductIDs)
}

// Revisiting a category for a second trader extends productIds (union),
// never replaces, and never duplicates a class name.
func TestBuilderRevisitedCategoryUnion(t *testing.T) {
	b := NewBuilder()

	catID := b.Category("Weapons")
	akID := b.AddProduct(catID, domain.Product{ClassName: "AK74"})

	// second trader, same category, one repeated and one new product
	sameCat := b.Category("Weapons")
	repeat := b.AddProduct(sameCat, domain.Product{ClassName: "AK74"})
	m4ID := b.AddProduct(sameCat, domain.Product{ClassName: "M4A1"})

	assert.Equal(t, akID, repeat)
	assert.Len(t, b.Products(), 2)
	assert.Equal(t, []string{akID, m4ID}, b.Categories()[0].ProductIDs)
}

func TestBuilderSameClassNameInDifferentCategories(t *testing.T) {
	b := NewBuilder()
	weapons := b.Category("Weapons")
	collectors := b.Category("Collectors")

	first := b.AddProduct(weapons, domain.Product{ClassName: "AK74"})
	second := b.AddProduct(collectors, domain.Product{ClassName: "AK74"})

	assert.Equal(t, "prod_ak74_000", first)
	assert.Equal(t, "prod_ak74_001", second)
}

func TestBuilderUnnamedCategory(t *testing.T) {
	b := NewBuilder()
	id := b.Category("")

	require.Len(t, b.Categories(), 1)
	assert.Equal(t, domain.DefaultCategoryName, b.Categories()[0].CategoryName)
	assert.Contains(t, id, "cat_unnamedcategory_")
}

func TestBuilderSetLicenses(t *testing.T) {
	b := NewBuilder()
	id := b.Category("Weapons")

	b.SetLicenses(id, []string{"licence_000"})

	assert.Equal(t, []string{"licence_000"}, b.Categories()[0].LicensesRequired)
}
