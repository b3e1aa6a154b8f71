// Package dsl parses the legacy line-tagged trader config dialect
// (TraderConfig.txt). The format is a flat list of tag-prefixed lines:
//
//	<CurrencyName> Rubles
//	<Currency> Ruble100,100
//	<Trader> Bob
//	<Category> Weapons
//	AK74,*,50,25
//	<FileEnd>
//
// Parsing is maximally lenient: malformed lines are skipped and reported
// as diagnostics, never as errors.
package dsl

import (
	"strconv"
	"strings"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

// Line tags recognised by the parser
const (
	TagCurrencyName = "<CurrencyName>"
	TagCurrency     = "<Currency>"
	TagTrader       = "<Trader>"
	TagCategory     = "<Category>"
	TagFileEnd      = "<FileEnd>"
	TagOpenFile     = "<OpenFile>"
)

// CommentMarker starts a trailing line comment.
const CommentMarker = "//"

// minProductFields is the minimum comma-separated fields of a product row.
const minProductFields = 4

// UnlimitedMarker is the quantity token meaning "unlimited".
const UnlimitedMarker = "*"

// Product is one product row inside a category.
type Product struct {
	ClassName string
	Quantity  float64 // -1 when the row used the unlimited marker
	BuyPrice  int
	SellPrice int
}

// Category is a named group of product rows under a trader.
type Category struct {
	Name     string
	Products []Product
}

// Trader is one trader section of the file.
type Trader struct {
	Name       string
	Categories []Category
}

// Config is the parsed intermediate form of a line-DSL file.
type Config struct {
	CurrencyName string
	Currencies   []domain.Currency
	Traders      []Trader
}

// parser state: which section the state machine is currently collecting
type state int

const (
	stateNone state = iota
	stateCurrency
	stateTrader
	stateCategory
)

// Parse reads the line dialect into its intermediate form. No line-level
// problem is fatal; unparseable rows are skipped and reported in the
// returned diagnostics.
func Parse(text string) (*Config, []domain.Diagnostic, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, domain.ErrEmptyInput
	}

	cfg := &Config{}
	var diags []domain.Diagnostic
	st := stateNone

	lines := strings.Split(text, "\n")
scan:
	for i, raw := range lines {
		lineNo := i + 1
		line := stripComment(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, TagFileEnd), strings.HasPrefix(line, TagOpenFile):
			break scan

		case strings.HasPrefix(line, TagCurrencyName):
			cfg.CurrencyName = strings.TrimSpace(strings.TrimPrefix(line, TagCurrencyName))
			st = stateCurrency

		case strings.HasPrefix(line, TagCurrency):
			if st != stateCurrency {
				diags = append(diags, domain.SkipDiagf(lineNo, "currency outside currency section skipped"))
				continue
			}
			cur, ok := parseCurrency(strings.TrimSpace(strings.TrimPrefix(line, TagCurrency)))
			if !ok {
				diags = append(diags, domain.SkipDiagf(lineNo, "malformed currency line skipped"))
				continue
			}
			cfg.Currencies = append(cfg.Currencies, cur)

		case strings.HasPrefix(line, TagTrader):
			// A trader section closes the currency section for good.
			st = stateTrader
			cfg.Traders = append(cfg.Traders, Trader{
				Name: strings.TrimSpace(strings.TrimPrefix(line, TagTrader)),
			})

		case strings.HasPrefix(line, TagCategory):
			if len(cfg.Traders) == 0 {
				diags = append(diags, domain.SkipDiagf(lineNo, "category before any trader skipped"))
				continue
			}
			st = stateCategory
			trader := &cfg.Traders[len(cfg.Traders)-1]
			trader.Categories = append(trader.Categories, Category{
				Name: strings.TrimSpace(strings.TrimPrefix(line, TagCategory)),
			})

		case st == stateCategory && strings.Contains(line, ","):
			trader := &cfg.Traders[len(cfg.Traders)-1]
			cat := &trader.Categories[len(trader.Categories)-1]
			prod, ok := parseProductRow(line)
			if !ok {
				diags = append(diags, domain.SkipDiagf(lineNo, "product row with fewer than %d fields skipped", minProductFields))
				continue
			}
			cat.Products = append(cat.Products, prod)

		default:
			diags = append(diags, domain.SkipDiagf(lineNo, "unrecognized line skipped"))
		}
	}

	if len(cfg.Traders) == 0 {
		return nil, diags, domain.ErrNoTraderData
	}
	return cfg, diags, nil
}

// stripComment removes a trailing //-comment and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.Index(line, CommentMarker); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// parseCurrency reads "ClassName,Value".
func parseCurrency(s string) (domain.Currency, bool) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return domain.Currency{}, false
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return domain.Currency{}, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || value < 0 {
		return domain.Currency{}, false
	}
	return domain.Currency{ClassName: name, Value: value}, true
}

// parseProductRow reads "className,quantity,buyPrice,sellPrice". Rows with
// extra fields keep only the first four; malformed numerics coerce to 0.
func parseProductRow(line string) (Product, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < minProductFields {
		return Product{}, false
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Product{}, false
	}
	return Product{
		ClassName: name,
		Quantity:  parseQuantity(strings.TrimSpace(parts[1])),
		BuyPrice:  parseIntLenient(strings.TrimSpace(parts[2])),
		SellPrice: parseIntLenient(strings.TrimSpace(parts[3])),
	}, true
}

// parseQuantity maps the unlimited marker to -1 and coerces garbage to 0.
func parseQuantity(s string) float64 {
	if s == UnlimitedMarker {
		return float64(domain.UnlimitedQuantity)
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return q
}

// parseIntLenient coerces malformed numerics to 0, truncating floats.
func parseIntLenient(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
