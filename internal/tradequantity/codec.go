// Package tradequantity packs the legacy scalar trade-quantity value into
// the single integer bitfield the game engine consumes. The bit layout is a
// compatibility contract and must be reproduced exactly:
//
//	bits 0-2   sell mode
//	bits 3-5   buy mode
//	bits 6-12  sell quantity (masked into the low 13 bits with the modes)
//	bits 19+   buy quantity
package tradequantity

import "math"

// Mode is a buy or sell behaviour encoded in the bitfield.
type Mode int

// Buy/sell mode values. These integers are consumed by the game engine;
// never renumber them.
const (
	BuyEmpty        Mode = 0
	SellEmpty       Mode = 1
	BuyFull         Mode = 2
	SellFull        Mode = 2
	BuyCoefficient  Mode = 3
	SellCoefficient Mode = 3
	BuyStatic       Mode = 4
	SellStatic      Mode = 4
)

// Bit layout constants
const (
	buyModeShift  = 3
	sellQtyShift  = 6
	buyQtyShift   = 19
	lowFieldMask  = 0x1FFF
	modeFieldMask = 0x7
	sellQtyMask   = 0x7F
)

// Fields is the unpacked view of a trade-quantity bitfield.
type Fields struct {
	BuyMode  Mode
	SellMode Mode
	BuyQty   int
	SellQty  int
}

// Encode maps a legacy scalar quantity onto the packed bitfield:
//
//	q == 0          -> buy EMPTY, sell EMPTY, quantities 0
//	q == -1, q == 1 -> buy FULL, sell FULL, quantities 0
//	0 < q < 1       -> COEFFICIENT with floor(q*100) in both quantities
//	otherwise       -> STATIC with floor(q) in both quantities
//
// Fractional values above 1 lose their fraction to floor(); the legacy
// format had no way to express them either. Negative quantities other
// than -1 clamp to a zero static quantity.
func Encode(q float64) int {
	f := Classify(q)
	return Pack(f)
}

// Classify applies the legacy decision table without packing.
func Classify(q float64) Fields {
	switch {
	case q == 0:
		return Fields{BuyMode: BuyEmpty, SellMode: SellEmpty}
	case q == -1 || q == 1:
		return Fields{BuyMode: BuyFull, SellMode: SellFull}
	case q > 0 && q < 1:
		n := int(math.Floor(q * 100))
		return Fields{BuyMode: BuyCoefficient, SellMode: SellCoefficient, BuyQty: n, SellQty: n}
	default:
		n := int(math.Floor(q))
		// Negative quantities other than -1 have no legacy meaning;
		// clamp to zero so the packed field stays in range.
		if n < 0 {
			n = 0
		}
		return Fields{BuyMode: BuyStatic, SellMode: SellStatic, BuyQty: n, SellQty: n}
	}
}

// Pack assembles the bitfield from its fields.
func Pack(f Fields) int {
	return int(f.SellMode) |
		int(f.BuyMode)<<buyModeShift |
		(f.SellQty<<sellQtyShift)&lowFieldMask |
		f.BuyQty<<buyQtyShift
}

// Decode unpacks a bitfield back into its fields. The conversion core only
// writes packed values; Decode exists so round-trip invariants can be
// asserted against the documented bit positions.
func Decode(v int) Fields {
	return Fields{
		SellMode: Mode(v & modeFieldMask),
		BuyMode:  Mode(v >> buyModeShift & modeFieldMask),
		SellQty:  v >> sellQtyShift & sellQtyMask,
		BuyQty:   v >> buyQtyShift,
	}
}
