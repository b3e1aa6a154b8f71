package tradequantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		q        float64
		buyMode  Mode
		sellMode Mode
		buyQty   int
		sellQty  int
	}{
		{
			name:     "zero is empty",
			q:        0,
			buyMode:  BuyEmpty,
			sellMode: SellEmpty,
		},
		{
			name:     "minus one is full",
			q:        -1,
			buyMode:  BuyFull,
			sellMode: SellFull,
		},
		{
			name:     "one is full",
			q:        1,
			buyMode:  BuyFull,
			sellMode: SellFull,
		},
		{
			name:     "half is coefficient 50",
			q:        0.5,
			buyMode:  BuyCoefficient,
			sellMode: SellCoefficient,
			buyQty:   50,
			sellQty:  50,
		},
		{
			name:     "quarter floors to 25",
			q:        0.25,
			buyMode:  BuyCoefficient,
			sellMode: SellCoefficient,
			buyQty:   25,
			sellQty:  25,
		},
		{
			name:     "static quantity",
			q:        30,
			buyMode:  BuyStatic,
			sellMode: SellStatic,
			buyQty:   30,
			sellQty:  30,
		},
		{
			name:     "fractional above one floors to static",
			q:        2.5,
			buyMode:  BuyStatic,
			sellMode: SellStatic,
			buyQty:   2,
			sellQty:  2,
		},
		{
			name:     "negative below minus one clamps to zero static",
			q:        -2,
			buyMode:  BuyStatic,
			sellMode: SellStatic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(Encode(tt.q))
			assert.Equal(t, tt.buyMode, got.BuyMode, "buy mode")
			assert.Equal(t, tt.sellMode, got.SellMode, "sell mode")
			assert.Equal(t, tt.buyQty, got.BuyQty, "buy quantity")
			assert.Equal(t, tt.sellQty, got.SellQty, "sell quantity")
		})
	}
}

// encode(-1) and encode(1) must produce identical packed values.
func TestEncodeFullAliases(t *testing.T) {
	assert.Equal(t, Encode(-1), Encode(1))
}

// The exact bit positions are an engine compatibility contract.
func TestPackBitLayout(t *testing.T) {
	v := Encode(0)
	assert.Equal(t, 1, v&0x7, "sell mode bits")
	assert.Equal(t, 0, v>>3&0x7, "buy mode bits")
	assert.Equal(t, 0, v>>6&0x7F, "sell qty bits")
	assert.Equal(t, 0, v>>19, "buy qty bits")

	v = Encode(0.5)
	assert.Equal(t, 3, v&0x7)
	assert.Equal(t, 3, v>>3&0x7)
	assert.Equal(t, 50, v>>6&0x7F)
	assert.Equal(t, 50, v>>19)

	// Full packing formula, spelled out
	assert.Equal(t, 3|3<<3|50<<6&0x1FFF|50<<19, Encode(0.5))
}

func TestRoundTrip(t *testing.T) {
	for _, q := range []float64{0, -1, 1, 0.01, 0.5, 0.99, 2, 5, 30, 100} {
		f := Classify(q)
		assert.Equal(t, f, Decode(Pack(f)), "round trip for q=%v", q)
	}
}

// Out-of-domain negative quantities must still pack to a non-negative
// bitfield; legacy files occasionally carry them.
func TestEncodeNegativeQuantityStaysInRange(t *testing.T) {
	for _, q := range []float64{-2, -0.5, -100} {
		assert.GreaterOrEqual(t, Encode(q), 0, "q=%g", q)
	}
}
