// Package catalog materializes parsed legacy data into uniquely-identified
// category and product records, merging duplicates instead of silently
// re-creating them.
package catalog

import (
	"github.com/traderx-tools/traderx-convert/internal/domain"
	"github.com/traderx-tools/traderx-convert/internal/naming"
)

// Slug fallbacks for entities whose names normalize to nothing.
const (
	categorySlugFallback = "category"
	productSlugFallback  = "product"
)

// ImportedCategory is a category as it arrives from an import, where
// optional fields may be absent. Absent fields are backfilled with
// defaults during merging.
type ImportedCategory struct {
	CategoryID       string
	CategoryName     string
	Icon             *string
	IsVisible        *bool
	LicensesRequired []string
	ProductIDs       []string
}

// MergeCategories folds imported categories into an existing collection.
// Imported entries without an ID get one minted per category-name slug;
// an imported entry whose ID matches an existing category is dropped, the
// existing entry wins. Missing optional fields are backfilled (visible,
// empty icon, empty licence and product lists, "Unnamed Category").
// MergeCategories is idempotent under identical repeated input.
func MergeCategories(existing []domain.Category, imported []ImportedCategory) ([]domain.Category, []domain.Diagnostic) {
	gen := naming.NewGenerator(domain.CategoryIDPrefix)
	seen := make(map[string]bool, len(existing))
	ids := make([]string, 0, len(existing)+len(imported))
	for _, c := range existing {
		seen[c.CategoryID] = true
		ids = append(ids, c.CategoryID)
	}
	for _, c := range imported {
		if c.CategoryID != "" {
			ids = append(ids, c.CategoryID)
		}
	}
	gen.Seed(ids)

	merged := make([]domain.Category, len(existing))
	copy(merged, existing)
	var diags []domain.Diagnostic

	for _, imp := range imported {
		cat := materializeCategory(imp, gen)
		if seen[cat.CategoryID] {
			diags = append(diags, domain.Diagf(0, "category %s already present, existing entry kept", cat.CategoryID))
			continue
		}
		seen[cat.CategoryID] = true
		merged = append(merged, cat)
	}
	return merged, diags
}

// materializeCategory backfills defaults and mints a missing ID.
func materializeCategory(imp ImportedCategory, gen *naming.Generator) domain.Category {
	name := imp.CategoryName
	if name == "" {
		name = domain.DefaultCategoryName
	}

	id := imp.CategoryID
	if id == "" {
		id = gen.Next(naming.Slug(name, categorySlugFallback))
	}

	icon := ""
	if imp.Icon != nil {
		icon = *imp.Icon
	}
	visible := true
	if imp.IsVisible != nil {
		visible = *imp.IsVisible
	}

	licenses := imp.LicensesRequired
	if licenses == nil {
		licenses = []string{}
	}
	productIDs := imp.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return domain.Category{
		CategoryID:       id,
		CategoryName:     name,
		Icon:             icon,
		IsVisible:        visible,
		LicensesRequired: licenses,
		ProductIDs:       productIDs,
	}
}

// MergeProducts folds imported products into an existing collection.
// Imported entries without an ID get one minted per class-name slug.
// Unlike categories, an ID collision is an update-in-place: the existing
// record's fields are replaced by the imported ones while the productId of
// the existing record is preserved.
func MergeProducts(existing []domain.Product, imported []domain.Product) ([]domain.Product, []domain.Diagnostic) {
	gen := naming.NewGenerator(domain.ProductIDPrefix)
	index := make(map[string]int, len(existing))
	ids := make([]string, 0, len(existing)+len(imported))
	for i, p := range existing {
		index[p.ProductID] = i
		ids = append(ids, p.ProductID)
	}
	for _, p := range imported {
		if p.ProductID != "" {
			ids = append(ids, p.ProductID)
		}
	}
	gen.Seed(ids)

	merged := make([]domain.Product, len(existing))
	copy(merged, existing)
	var diags []domain.Diagnostic

	for _, imp := range imported {
		if imp.ProductID == "" {
			imp.ProductID = gen.Next(naming.Slug(imp.ClassName, productSlugFallback))
		}
		if i, ok := index[imp.ProductID]; ok {
			keep := merged[i].ProductID
			merged[i] = imp
			merged[i].ProductID = keep
			diags = append(diags, domain.Diagf(0, "product %s updated in place", keep))
			continue
		}
		index[imp.ProductID] = len(merged)
		merged = append(merged, imp)
	}
	return merged, diags
}
