package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestMergeCategories(t *testing.T) {
	t.Run("mints ids for new categories", func(t *testing.T) {
		merged, diags := MergeCategories(nil, []ImportedCategory{
			{CategoryName: "Weapons"},
			{CategoryName: "Weapons"},
		})

		assert.Empty(t, diags)
		require.Len(t, merged, 2)
		assert.Equal(t, "cat_weapons_000", merged[0].CategoryID)
		assert.Equal(t, "cat_weapons_001", merged[1].CategoryID)
	})

	t.Run("existing entry wins on id collision", func(t *testing.T) {
		existing := []domain.Category{{
			CategoryID:   "cat_weapons_000",
			CategoryName: "Weapons",
			Icon:         "rifle.png",
		}}
		merged, diags := MergeCategories(existing, []ImportedCategory{
			{CategoryID: "cat_weapons_000", CategoryName: "Overwritten", Icon: strPtr("other.png")},
		})

		require.Len(t, merged, 1)
		assert.Equal(t, "Weapons", merged[0].CategoryName)
		assert.Equal(t, "rifle.png", merged[0].Icon)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "already present")
	})

	t.Run("idempotent under repeated input", func(t *testing.T) {
		imported := []ImportedCategory{{CategoryID: "cat_food_000", CategoryName: "Food"}}

		once, _ := MergeCategories(nil, imported)
		twice, _ := MergeCategories(once, imported)

		assert.Equal(t, once, twice)
	})

	t.Run("backfills defaults", func(t *testing.T) {
		merged, _ := MergeCategories(nil, []ImportedCategory{{}})

		require.Len(t, merged, 1)
		cat := merged[0]
		assert.Equal(t, domain.DefaultCategoryName, cat.CategoryName)
		assert.True(t, cat.IsVisible)
		assert.Equal(t, "", cat.Icon)
		assert.NotNil(t, cat.LicensesRequired)
		assert.Empty(t, cat.LicensesRequired)
		assert.NotNil(t, cat.ProductIDs)
	})

	t.Run("explicit false visibility is kept", func(t *testing.T) {
		merged, _ := MergeCategories(nil, []ImportedCategory{
			{CategoryName: "Hidden", IsVisible: boolPtr(false)},
		})
		assert.False(t, merged[0].IsVisible)
	})

	t.Run("new ids continue past existing counters", func(t *testing.T) {
		existing := []domain.Category{{CategoryID: "cat_weapons_004", CategoryName: "Weapons"}}
		merged, _ := MergeCategories(existing, []ImportedCategory{{CategoryName: "Weapons"}})

		require.Len(t, merged, 2)
		assert.Equal(t, "cat_weapons_005", merged[1].CategoryID)
	})
}

func TestMergeProducts(t *testing.T) {
	t.Run("mints ids for new products", func(t *testing.T) {
		merged, diags := MergeProducts(nil, []domain.Product{
			{ClassName: "AK74", BuyPrice: 3000},
		})

		assert.Empty(t, diags)
		require.Len(t, merged, 1)
		assert.Equal(t, "prod_ak74_000", merged[0].ProductID)
	})

	t.Run("id collision updates in place and preserves id", func(t *testing.T) {
		existing := []domain.Product{{
			ProductID: "prod_ak74_000",
			ClassName: "AK74",
			BuyPrice:  3000,
			SellPrice: 1500,
		}}
		merged, diags := MergeProducts(existing, []domain.Product{{
			ProductID: "prod_ak74_000",
			ClassName: "AK74",
			BuyPrice:  2500,
			SellPrice: 1200,
		}})

		require.Len(t, merged, 1)
		assert.Equal(t, "prod_ak74_000", merged[0].ProductID)
		assert.Equal(t, 2500, merged[0].BuyPrice)
		assert.Equal(t, 1200, merged[0].SellPrice)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "updated in place")
	})

	t.Run("distinct ids append", func(t *testing.T) {
		existing := []domain.Product{{ProductID: "prod_ak74_000", ClassName: "AK74"}}
		merged, _ := MergeProducts(existing, []domain.Product{
			{ProductID: "prod_m4a1_000", ClassName: "M4A1"},
		})

		assert.Len(t, merged, 2)
	})

	t.Run("new ids continue past existing counters", func(t *testing.T) {
		existing := []domain.Product{{ProductID: "prod_ak74_002", ClassName: "AK74"}}
		merged, _ := MergeProducts(existing, []domain.Product{{ClassName: "AK74"}})

		require.Len(t, merged, 2)
		assert.Equal(t, "prod_ak74_003", merged[1].ProductID)
	})
}
