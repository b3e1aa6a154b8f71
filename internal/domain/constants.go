package domain

// Document versions written into emitted files
const (
	GeneralSettingsVersion  = "1.0"
	CurrencySettingsVersion = "1.0"
)

// ID prefixes for generated identifiers
const (
	CategoryIDPrefix = "cat"
	ProductIDPrefix  = "prod"
	LicenseIDPrefix  = "licence"
)

// NpcIDATM is the npcId reserved for the ATM pseudo-trader.
const NpcIDATM = -2

// UnlimitedQuantity marks unlimited stock / loadout quantity.
const UnlimitedQuantity = -1

// PriceNotTradeable marks a product as not buyable or not sellable.
const PriceNotTradeable = -1

// Defaults backfilled during materialization
const (
	DefaultCategoryName = "Unnamed Category"
	DefaultCoefficient  = 1.0
)

// Accepted-state coefficient defaults applied when the legacy config
// carries no value.
const (
	DefaultCoefficientWorn         = 0.7
	DefaultCoefficientDamaged      = 0.5
	DefaultCoefficientBadlyDamaged = 0.3
)

// Currency type codes recognised by the classifier
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyRUB = "RUB"
)

// SlotNames is the closed set of loadout attachment slots.
var SlotNames = []string{
	"Shoulder", "Melee", "Headgear", "Mask", "Eyewear", "Hands",
	"Gloves", "Armband", "Vest", "Body", "Back", "Hips", "Legs", "Feet",
}
