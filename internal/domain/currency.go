package domain

// Currency is a single denomination of a currency type, e.g. a 100-ruble note.
type Currency struct {
	ClassName string `json:"className" validate:"required"`
	Value     int    `json:"value" validate:"min=0"`
}

// CurrencyType groups the denominations that belong to one currency,
// e.g. "EUR" with Euro10/Euro50/Euro100 class names.
type CurrencyType struct {
	CurrencyName string     `json:"currencyName" validate:"required"`
	Currencies   []Currency `json:"currencies" validate:"dive"`
}

// CurrencySettings is the emitted CurrencySettings.json document.
type CurrencySettings struct {
	Version       string         `json:"version"`
	CurrencyTypes []CurrencyType `json:"currencyTypes" validate:"dive"`
}
