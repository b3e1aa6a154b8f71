package legacy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

// productLineFields is the field count of a legacy price line:
// className,coefficient,maxStock,tradeQuantity,buyPrice,sellPrice.
const productLineFields = 6

// ProductLine is one parsed legacy price entry.
type ProductLine struct {
	ClassName     string
	Coefficient   float64
	MaxStock      int
	TradeQuantity float64
	BuyPrice      int
	SellPrice     int
}

// Store accumulates classified documents until the triplet is complete.
// Re-submitting a document type overwrites the previous one (last write
// wins), which is what makes incremental multi-file submission work.
// A Store is local to one conversion session.
type Store struct {
	General *GeneralConfig
	IDs     *IDsConfig
	Price   *PriceConfig
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{}
}

// Submit classifies and parses one raw document into the store. An
// unrecognized shape is fatal to the submission; the store keeps whatever
// it already held.
func (s *Store) Submit(data []byte) (DocumentKind, error) {
	kind, err := Classify(data)
	if err != nil {
		return KindUnknown, err
	}

	switch kind {
	case KindGeneral:
		var cfg GeneralConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return kind, fmt.Errorf("%w: general config: %v", domain.ErrInvalidJSON, err)
		}
		s.General = &cfg
	case KindIDs:
		var cfg IDsConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return kind, fmt.Errorf("%w: ids config: %v", domain.ErrInvalidJSON, err)
		}
		s.IDs = &cfg
	case KindPrice:
		var cfg PriceConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return kind, fmt.Errorf("%w: price config: %v", domain.ErrInvalidJSON, err)
		}
		s.Price = &cfg
	}
	return kind, nil
}

// Complete reports whether all three documents have been submitted.
func (s *Store) Complete() bool {
	return s.General != nil && s.IDs != nil && s.Price != nil
}

// ParseProductLine reads one legacy CSV price line. Lines with fewer than
// six fields are rejected; malformed numerics coerce to zero rather than
// failing the line.
func ParseProductLine(line string) (ProductLine, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < productLineFields {
		return ProductLine{}, false
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return ProductLine{}, false
	}
	return ProductLine{
		ClassName:     name,
		Coefficient:   parseFloatLenient(parts[1]),
		MaxStock:      parseIntLenient(parts[2]),
		TradeQuantity: parseFloatLenient(parts[3]),
		BuyPrice:      parseIntLenient(parts[4]),
		SellPrice:     parseIntLenient(parts[5]),
	}, true
}

func parseFloatLenient(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseIntLenient(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
