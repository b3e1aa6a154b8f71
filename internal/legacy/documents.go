// Package legacy parses the three-document legacy JSON dialect: a general
// config, an ID-mapping config and a price config. Documents are classified
// by structural fingerprint and may arrive in any order; conversion only
// proceeds once all three are present.
package legacy

// GeneralConfig is the legacy general settings document, fingerprinted by
// the presence of both "Traders" and "Currencies".
type GeneralConfig struct {
	Version        string                `json:"Version"`
	Currencies     []CurrencyEntry       `json:"Currencies"`
	Licences       []string              `json:"Licences"`
	AcceptedStates *LegacyAcceptedStates `json:"AcceptedStates"`
	Traders        []TraderEntry         `json:"Traders"`
	TraderObjects  []ObjectEntry         `json:"TraderObjects"`
}

// CurrencyEntry is one legacy currency. ClassName may hold several
// comma-separated alias class names that all share the same value.
type CurrencyEntry struct {
	ClassName string `json:"ClassName"`
	Value     int    `json:"Value"`
}

// LegacyAcceptedStates uses 0/1 integers for the accept flags.
type LegacyAcceptedStates struct {
	AcceptWorn              int      `json:"AcceptWorn"`
	AcceptDamaged           int      `json:"AcceptDamaged"`
	AcceptBadlyDamaged      int      `json:"AcceptBadlyDamaged"`
	CoefficientWorn         *float64 `json:"CoefficientWorn"`
	CoefficientDamaged      *float64 `json:"CoefficientDamaged"`
	CoefficientBadlyDamaged *float64 `json:"CoefficientBadlyDamaged"`
}

// TraderEntry is one legacy trader NPC.
type TraderEntry struct {
	ID          int        `json:"Id"`
	ClassName   string     `json:"ClassName"`
	GivenName   string     `json:"GivenName"`
	Role        string     `json:"Role"`
	Position    [3]float64 `json:"Position"`
	Orientation [3]float64 `json:"Orientation"`
	Clothes     []string   `json:"Clothes"`
}

// ObjectEntry is a static prop placed near traders.
type ObjectEntry struct {
	ObjectName  string     `json:"ObjectName"`
	Position    [3]float64 `json:"Position"`
	Orientation [3]float64 `json:"Orientation"`
}

// IDsConfig is the legacy ID-mapping document, fingerprinted by "IDs".
// It links trader IDs to category names, required licences and accepted
// currencies.
type IDsConfig struct {
	Version string    `json:"Version"`
	IDs     []IDEntry `json:"IDs"`
}

// IDEntry maps one trader to its catalog.
type IDEntry struct {
	ID                 int      `json:"Id"`
	Categories         []string `json:"Categories"`
	LicencesRequired   []string `json:"LicencesRequired"`
	CurrenciesAccepted []string `json:"CurrenciesAccepted"`
}

// PriceConfig is the legacy price document, fingerprinted by
// "TraderCategories". Product lines are CSV strings:
// className,coefficient,maxStock,tradeQuantity,buyPrice,sellPrice.
type PriceConfig struct {
	Version          string          `json:"Version"`
	TraderCategories []CategoryEntry `json:"TraderCategories"`
}

// CategoryEntry is one legacy category with its raw product lines.
type CategoryEntry struct {
	CategoryName string   `json:"CategoryName"`
	Products     []string `json:"Products"`
}
