package assemble

import (
	"fmt"

	"github.com/traderx-tools/traderx-convert/internal/domain"
	"github.com/traderx-tools/traderx-convert/internal/utils"
)

// Output file names under the configuration root
const (
	CurrencySettingsFile = "CurrencySettings.json"
	GeneralSettingsFile  = "GeneralSettings.json"
	CategoriesDir        = "Categories"
	ProductsDir          = "Products"
)

// Files renders the output into a virtual file map keyed by path under
// root, one document per file, pretty-printed. Every document is validated
// before it is rendered; a validation failure aborts the whole map so a
// broken conversion never emits partial output.
func (o *Output) Files(root string) (map[string]string, error) {
	if err := domain.ValidateCurrencySettings(&o.Currency); err != nil {
		return nil, fmt.Errorf("currency settings: %w", err)
	}
	if err := domain.ValidateGeneralSettings(&o.General); err != nil {
		return nil, fmt.Errorf("general settings: %w", err)
	}

	files := make(map[string]string, len(o.Categories)+len(o.Products)+2)

	currency, err := utils.MarshalPretty(o.Currency)
	if err != nil {
		return nil, err
	}
	files[root+"/"+CurrencySettingsFile] = currency

	general, err := utils.MarshalPretty(o.General)
	if err != nil {
		return nil, err
	}
	files[root+"/"+GeneralSettingsFile] = general

	for i := range o.Categories {
		cat := &o.Categories[i]
		if err := domain.ValidateCategory(cat); err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.CategoryID, err)
		}
		doc, err := utils.MarshalPretty(cat)
		if err != nil {
			return nil, err
		}
		files[fmt.Sprintf("%s/%s/%s.json", root, CategoriesDir, cat.CategoryID)] = doc
	}

	for i := range o.Products {
		p := &o.Products[i]
		if err := domain.ValidateProduct(p); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ProductID, err)
		}
		doc, err := utils.MarshalPretty(p)
		if err != nil {
			return nil, err
		}
		files[fmt.Sprintf("%s/%s/%s.json", root, ProductsDir, p.ProductID)] = doc
	}

	return files, nil
}
