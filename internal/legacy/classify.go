package legacy

import (
	"encoding/json"
	"fmt"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

// DocumentKind tags a classified legacy document.
type DocumentKind int

const (
	KindUnknown DocumentKind = iota
	KindGeneral
	KindIDs
	KindPrice
)

func (k DocumentKind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindIDs:
		return "ids"
	case KindPrice:
		return "price"
	default:
		return "unknown"
	}
}

// Classify inspects a raw JSON document and returns its kind:
//
//	has "Traders" and "Currencies" -> general config
//	has "IDs"                      -> ID-mapping config
//	has "TraderCategories"         -> price config
//
// Any other shape is ErrUnknownConfigFormat; unparseable JSON is
// ErrInvalidJSON. Classification is computed once per document.
func Classify(data []byte) (DocumentKind, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return KindUnknown, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}

	_, hasTraders := probe["Traders"]
	_, hasCurrencies := probe["Currencies"]
	_, hasIDs := probe["IDs"]
	_, hasCategories := probe["TraderCategories"]

	switch {
	case hasTraders && hasCurrencies:
		return KindGeneral, nil
	case hasIDs:
		return KindIDs, nil
	case hasCategories:
		return KindPrice, nil
	default:
		return KindUnknown, domain.ErrUnknownConfigFormat
	}
}
