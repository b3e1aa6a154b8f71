// Package assemble builds the final TraderX settings documents from parsed
// legacy data and renders them into the virtual file map handed to the
// packaging collaborator.
package assemble

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/traderx-tools/traderx-convert/internal/catalog"
	"github.com/traderx-tools/traderx-convert/internal/domain"
	"github.com/traderx-tools/traderx-convert/internal/dsl"
	"github.com/traderx-tools/traderx-convert/internal/legacy"
	"github.com/traderx-tools/traderx-convert/internal/tradequantity"
)

// Options tune an assembly run.
type Options struct {
	// DefaultCurrency is the currency type code used when classification
	// has nothing better to offer.
	DefaultCurrency string

	// ServerID overrides the generated server identifier, useful in tests.
	ServerID string
}

// Output is a fully assembled TraderX configuration.
type Output struct {
	Currency   domain.CurrencySettings
	General    domain.GeneralSettings
	Categories []domain.Category
	Products   []domain.Product
}

// FromLineConfig assembles the output from a parsed line-DSL config.
func FromLineConfig(cfg *dsl.Config, opts Options) (*Output, []domain.Diagnostic, error) {
	var diags []domain.Diagnostic

	currencyName := cfg.CurrencyName
	if currencyName == "" {
		currencyName = opts.DefaultCurrency
		diags = append(diags, domain.Diagf(0, "no currency name in source, defaulting to %s", currencyName))
	}

	denominations := cfg.Currencies
	if denominations == nil {
		denominations = []domain.Currency{}
	}

	builder := catalog.NewBuilder()
	traders := make([]domain.TraderNpc, 0, len(cfg.Traders))
	for i, t := range cfg.Traders {
		categoryIDs := []string{}
		for _, cat := range t.Categories {
			catID := builder.Category(cat.Name)
			categoryIDs = appendUnique(categoryIDs, catID)
			for _, p := range cat.Products {
				if p.Quantity < -1 {
					diags = append(diags, domain.Diagf(0, "product %q: negative quantity %g clamped to 0", p.ClassName, p.Quantity))
				}
				builder.AddProduct(catID, domain.Product{
					ClassName:     p.ClassName,
					Coefficient:   domain.DefaultCoefficient,
					MaxStock:      domain.UnlimitedQuantity,
					TradeQuantity: tradequantity.Encode(p.Quantity),
					BuyPrice:      p.BuyPrice,
					SellPrice:     p.SellPrice,
				})
			}
		}
		traders = append(traders, domain.TraderNpc{
			NpcID:              i,
			GivenName:          t.Name,
			CategoriesID:       categoryIDs,
			CurrenciesAccepted: []string{currencyName},
			Loadouts:           []domain.LoadoutItem{},
		})
	}

	out := &Output{
		Currency: domain.CurrencySettings{
			Version: domain.CurrencySettingsVersion,
			CurrencyTypes: []domain.CurrencyType{{
				CurrencyName: currencyName,
				Currencies:   denominations,
			}},
		},
		General: domain.GeneralSettings{
			Version:        domain.GeneralSettingsVersion,
			ServerID:       serverID(opts),
			Licenses:       []domain.License{},
			AcceptedStates: defaultAcceptedStates(),
			Traders:        traders,
			TraderObjects:  []domain.TraderObject{},
		},
		Categories: builder.Categories(),
		Products:   builder.Products(),
	}
	return out, diags, nil
}

// FromLegacyStore assembles the output from a complete three-document
// store. Callers must hold the full triplet; an incomplete store is an
// error here (the session layer treats it as a deferred no-op instead).
func FromLegacyStore(store *legacy.Store, opts Options) (*Output, []domain.Diagnostic, error) {
	if !store.Complete() {
		return nil, nil, domain.ErrMissingConfig
	}
	var diags []domain.Diagnostic

	currencies := legacy.ExpandCurrencies(store.General.Currencies, opts.DefaultCurrency)
	dominant := legacy.DominantType(currencies)
	if dominant == "" {
		dominant = opts.DefaultCurrency
	}

	licenses, licenseIDsByName := assembleLicenses(store.General.Licences)

	builder := catalog.NewBuilder()
	catDiags := assembleCatalog(builder, store.Price)
	diags = append(diags, catDiags...)

	idEntries := make(map[int]legacy.IDEntry, len(store.IDs.IDs))
	for _, e := range store.IDs.IDs {
		idEntries[e.ID] = e
	}

	traders := make([]domain.TraderNpc, 0, len(store.General.Traders))
	for i, t := range store.General.Traders {
		entry, ok := idEntries[t.ID]
		if !ok {
			diags = append(diags, domain.Diagf(0, "trader %q has no ID-mapping entry, converted without categories", t.GivenName))
		}

		categoryIDs := []string{}
		for _, name := range entry.Categories {
			catID := builder.Category(name)
			categoryIDs = appendUnique(categoryIDs, catID)
			if len(entry.LicencesRequired) > 0 {
				builder.SetLicenses(catID, resolveLicenses(entry.LicencesRequired, licenseIDsByName))
			}
		}

		traders = append(traders, domain.TraderNpc{
			NpcID:              i,
			ClassName:          t.ClassName,
			GivenName:          t.GivenName,
			Role:               t.Role,
			Position:           t.Position,
			Orientation:        t.Orientation,
			CategoriesID:       categoryIDs,
			CurrenciesAccepted: acceptedCurrencies(entry.CurrenciesAccepted, dominant, opts.DefaultCurrency),
			Loadouts:           assembleLoadout(t.Clothes),
		})
	}

	objects := make([]domain.TraderObject, 0, len(store.General.TraderObjects))
	for _, o := range store.General.TraderObjects {
		objects = append(objects, domain.TraderObject{
			ClassName:   o.ObjectName,
			Position:    o.Position,
			Orientation: o.Orientation,
		})
	}

	out := &Output{
		Currency: domain.CurrencySettings{
			Version:       domain.CurrencySettingsVersion,
			CurrencyTypes: legacy.GroupByType(currencies),
		},
		General: domain.GeneralSettings{
			Version:        domain.GeneralSettingsVersion,
			ServerID:       serverID(opts),
			Licenses:       licenses,
			AcceptedStates: assembleAcceptedStates(store.General.AcceptedStates),
			Traders:        traders,
			TraderObjects:  objects,
		},
		Categories: builder.Categories(),
		Products:   builder.Products(),
	}
	return out, diags, nil
}

// assembleLicenses turns the legacy licence name list into License records
// with sequential IDs, plus a name->ID lookup for category wiring.
func assembleLicenses(names []string) ([]domain.License, map[string]string) {
	licenses := make([]domain.License, 0, len(names))
	byName := make(map[string]string, len(names))
	for i, name := range names {
		id := fmt.Sprintf("%s_%03d", domain.LicenseIDPrefix, i)
		licenses = append(licenses, domain.License{
			LicenseID:   id,
			LicenseName: name,
		})
		byName[name] = id
	}
	return licenses, byName
}

func resolveLicenses(names []string, byName map[string]string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// assembleCatalog walks the price config and materializes every category
// and product through the builder.
func assembleCatalog(builder *catalog.Builder, price *legacy.PriceConfig) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, cat := range price.TraderCategories {
		catID := builder.Category(cat.CategoryName)
		for _, line := range cat.Products {
			p, ok := legacy.ParseProductLine(line)
			if !ok {
				diags = append(diags, domain.SkipDiagf(0, "category %q: malformed product line %q skipped", cat.CategoryName, line))
				continue
			}
			if p.TradeQuantity < -1 {
				diags = append(diags, domain.Diagf(0, "product %q: negative quantity %g clamped to 0", p.ClassName, p.TradeQuantity))
			}
			builder.AddProduct(catID, domain.Product{
				ClassName:     p.ClassName,
				Coefficient:   p.Coefficient,
				MaxStock:      p.MaxStock,
				TradeQuantity: tradequantity.Encode(p.TradeQuantity),
				BuyPrice:      p.BuyPrice,
				SellPrice:     p.SellPrice,
			})
		}
	}
	return diags
}

// acceptedCurrencies classifies the currency class names a trader accepts
// and unions the resulting type codes. With nothing specified the dominant
// currency type wins.
func acceptedCurrencies(classNames []string, dominant, fallback string) []string {
	if len(classNames) == 0 {
		return []string{dominant}
	}
	var out []string
	for _, cn := range classNames {
		t := cn
		if !isCurrencyCode(cn) {
			t = legacy.ClassifyCurrency(cn, fallback)
		}
		out = appendUnique(out, t)
	}
	return out
}

// isCurrencyCode reports whether the value is already a type code rather
// than a class name.
func isCurrencyCode(s string) bool {
	switch s {
	case domain.CurrencyEUR, domain.CurrencyUSD, domain.CurrencyRUB:
		return true
	}
	return false
}

// assembleLoadout converts the legacy clothes list 1:1 into loadout items.
// Quantities are unlimited and slot names are left empty for manual
// assignment in the editor.
func assembleLoadout(clothes []string) []domain.LoadoutItem {
	items := make([]domain.LoadoutItem, 0, len(clothes))
	for _, cn := range clothes {
		if cn == "" {
			continue
		}
		items = append(items, domain.LoadoutItem{
			ClassName:   cn,
			Quantity:    domain.UnlimitedQuantity,
			Attachments: []domain.LoadoutAttachment{},
		})
	}
	return items
}

// assembleAcceptedStates converts the legacy 0/1 flags and fills the
// standard coefficient defaults where the source has none.
func assembleAcceptedStates(legacyStates *legacy.LegacyAcceptedStates) domain.AcceptedStates {
	if legacyStates == nil {
		return defaultAcceptedStates()
	}
	states := domain.AcceptedStates{
		Worn:                    legacyStates.AcceptWorn != 0,
		Damaged:                 legacyStates.AcceptDamaged != 0,
		BadlyDamaged:            legacyStates.AcceptBadlyDamaged != 0,
		CoefficientWorn:         domain.DefaultCoefficientWorn,
		CoefficientDamaged:      domain.DefaultCoefficientDamaged,
		CoefficientBadlyDamaged: domain.DefaultCoefficientBadlyDamaged,
	}
	if legacyStates.CoefficientWorn != nil {
		states.CoefficientWorn = *legacyStates.CoefficientWorn
	}
	if legacyStates.CoefficientDamaged != nil {
		states.CoefficientDamaged = *legacyStates.CoefficientDamaged
	}
	if legacyStates.CoefficientBadlyDamaged != nil {
		states.CoefficientBadlyDamaged = *legacyStates.CoefficientBadlyDamaged
	}
	return states
}

// defaultAcceptedStates is used when the source dialect has no
// accepted-state data at all.
func defaultAcceptedStates() domain.AcceptedStates {
	return domain.AcceptedStates{
		Worn:                    true,
		Damaged:                 true,
		BadlyDamaged:            false,
		CoefficientWorn:         domain.DefaultCoefficientWorn,
		CoefficientDamaged:      domain.DefaultCoefficientDamaged,
		CoefficientBadlyDamaged: domain.DefaultCoefficientBadlyDamaged,
	}
}

func serverID(opts Options) string {
	if opts.ServerID != "" {
		return opts.ServerID
	}
	return uuid.NewString()
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
