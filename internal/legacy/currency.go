package legacy

import (
	"strings"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

// moneyInfix is the naming convention "<Prefix>_Money_<Type>" used by
// several legacy currency mods.
const moneyInfix = "_money_"

// ClassifyCurrency maps a currency class name onto a currency type code.
// Substring matching on well-known currency words comes first, then the
// "<Prefix>_Money_<Type>" convention, then the caller-supplied fallback.
func ClassifyCurrency(className, fallback string) string {
	lower := strings.ToLower(className)

	switch {
	case strings.Contains(lower, "euro"):
		return domain.CurrencyEUR
	case strings.Contains(lower, "dollar"):
		return domain.CurrencyUSD
	case strings.Contains(lower, "ruble"):
		return domain.CurrencyRUB
	}

	if i := strings.Index(lower, moneyInfix); i >= 0 {
		if t := classifyMoneySuffix(lower[i+len(moneyInfix):]); t != "" {
			return t
		}
	}
	return fallback
}

// classifyMoneySuffix interprets the trailing identifier of the
// "_Money_" convention, e.g. "Euro100" or "Dollar".
func classifyMoneySuffix(suffix string) string {
	switch {
	case strings.HasPrefix(suffix, "eur"):
		return domain.CurrencyEUR
	case strings.HasPrefix(suffix, "usd"), strings.HasPrefix(suffix, "dollar"):
		return domain.CurrencyUSD
	case strings.HasPrefix(suffix, "rub"):
		return domain.CurrencyRUB
	default:
		return ""
	}
}

// ExpandCurrencies flattens legacy currency entries into one record per
// class name. A comma-separated ClassName is a list of aliases that share
// the parent's value; every alias is classified independently.
func ExpandCurrencies(entries []CurrencyEntry, fallback string) []ClassifiedCurrency {
	var out []ClassifiedCurrency
	for _, e := range entries {
		for _, alias := range strings.Split(e.ClassName, ",") {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			out = append(out, ClassifiedCurrency{
				Currency: domain.Currency{ClassName: alias, Value: e.Value},
				Type:     ClassifyCurrency(alias, fallback),
			})
		}
	}
	return out
}

// ClassifiedCurrency pairs a currency record with its inferred type code.
type ClassifiedCurrency struct {
	Currency domain.Currency
	Type     string
}

// GroupByType folds classified currencies into CurrencyType groups,
// preserving first-seen type order.
func GroupByType(currencies []ClassifiedCurrency) []domain.CurrencyType {
	index := make(map[string]int)
	var groups []domain.CurrencyType
	for _, c := range currencies {
		i, ok := index[c.Type]
		if !ok {
			i = len(groups)
			index[c.Type] = i
			groups = append(groups, domain.CurrencyType{CurrencyName: c.Type})
		}
		groups[i].Currencies = append(groups[i].Currencies, c.Currency)
	}
	return groups
}

// DominantType returns the type with the most denominations, used as the
// default accepted currency when a trader specifies none.
func DominantType(currencies []ClassifiedCurrency) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, c := range currencies {
		counts[c.Type]++
		if counts[c.Type] > bestCount {
			best, bestCount = c.Type, counts[c.Type]
		}
	}
	return best
}
