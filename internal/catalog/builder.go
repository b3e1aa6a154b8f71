package catalog

import (
	"github.com/traderx-tools/traderx-convert/internal/domain"
	"github.com/traderx-tools/traderx-convert/internal/naming"
)

// Builder accumulates categories and products while a dialect converter
// walks its source traders. Category IDs are minted once per distinct
// category name across all traders, so every trader referencing the same
// name links to the same ID; products are minted once per class name
// within a category. A Builder is local to one conversion invocation.
type Builder struct {
	catGen  *naming.Generator
	prodGen *naming.Generator

	categories []domain.Category
	catIndex   map[string]int // category name -> index into categories

	products  []domain.Product
	prodIndex map[string]map[string]string // categoryID -> className -> productID
}

// NewBuilder creates an empty Builder with fresh ID counters.
func NewBuilder() *Builder {
	return &Builder{
		catGen:    naming.NewGenerator(domain.CategoryIDPrefix),
		prodGen:   naming.NewGenerator(domain.ProductIDPrefix),
		catIndex:  make(map[string]int),
		prodIndex: make(map[string]map[string]string),
	}
}

// Category returns the ID for a category name, minting the category on
// first sight. Revisiting the same name, from any trader, yields the same
// ID.
func (b *Builder) Category(name string) string {
	if i, ok := b.catIndex[name]; ok {
		return b.categories[i].CategoryID
	}

	displayName := name
	if displayName == "" {
		displayName = domain.DefaultCategoryName
	}
	id := b.catGen.Next(naming.Slug(displayName, categorySlugFallback))
	b.catIndex[name] = len(b.categories)
	b.categories = append(b.categories, domain.Category{
		CategoryID:       id,
		CategoryName:     displayName,
		Icon:             "",
		IsVisible:        true,
		LicensesRequired: []string{},
		ProductIDs:       []string{},
	})
	return id
}

// SetLicenses attaches required licence IDs to a category.
func (b *Builder) SetLicenses(categoryID string, licenseIDs []string) {
	for i := range b.categories {
		if b.categories[i].CategoryID == categoryID {
			b.categories[i].LicensesRequired = licenseIDs
			return
		}
	}
}

// AddProduct registers a product under a category and returns its ID.
// A class name already present in the category is not duplicated; the
// first record wins and its ID is returned. New products extend the
// category's productIds (union, never replace).
func (b *Builder) AddProduct(categoryID string, p domain.Product) string {
	byClass, ok := b.prodIndex[categoryID]
	if !ok {
		byClass = make(map[string]string)
		b.prodIndex[categoryID] = byClass
	}
	if id, ok := byClass[p.ClassName]; ok {
		return id
	}

	p.ProductID = b.prodGen.Next(naming.Slug(p.ClassName, productSlugFallback))
	if p.Attachments == nil {
		p.Attachments = []string{}
	}
	if p.Variants == nil {
		p.Variants = []string{}
	}
	byClass[p.ClassName] = p.ProductID
	b.products = append(b.products, p)

	for i := range b.categories {
		if b.categories[i].CategoryID == categoryID {
			b.categories[i].ProductIDs = append(b.categories[i].ProductIDs, p.ProductID)
			break
		}
	}
	return p.ProductID
}

// Categories returns the materialized categories in first-seen order.
func (b *Builder) Categories() []domain.Category {
	return b.categories
}

// Products returns the materialized products in first-seen order.
func (b *Builder) Products() []domain.Product {
	return b.products
}
