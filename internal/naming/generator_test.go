package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorNext(t *testing.T) {
	g := NewGenerator("cat")

	assert.Equal(t, "cat_weapons_000", g.Next("weapons"))
	assert.Equal(t, "cat_weapons_001", g.Next("weapons"))
	assert.Equal(t, "cat_food_000", g.Next("food"))
	assert.Equal(t, "cat_weapons_002", g.Next("weapons"))
}

// Counters must be strictly increasing with no collisions per slug.
func TestGeneratorNoCollisions(t *testing.T) {
	g := NewGenerator("prod")

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := g.Next("ak74")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, "prod_ak74_200", g.Next("ak74"))
}

func TestGeneratorSeed(t *testing.T) {
	t.Run("continues from max observed suffix", func(t *testing.T) {
		g := NewGenerator("cat")
		g.Seed([]string{"cat_weapons_000", "cat_weapons_007", "cat_food_002"})

		assert.Equal(t, "cat_weapons_008", g.Next("weapons"))
		assert.Equal(t, "cat_food_003", g.Next("food"))
		assert.Equal(t, "cat_medical_000", g.Next("medical"))
	})

	t.Run("ignores foreign and malformed ids", func(t *testing.T) {
		g := NewGenerator("cat")
		g.Seed([]string{"prod_ak74_004", "cat_weapons", "cat_weapons_12", "weapons_001", ""})

		assert.Equal(t, "cat_weapons_000", g.Next("weapons"))
	})

	t.Run("seeding after minting never decrements", func(t *testing.T) {
		g := NewGenerator("cat")
		for i := 0; i < 5; i++ {
			g.Next("weapons")
		}
		g.Seed([]string{"cat_weapons_001"})

		assert.Equal(t, "cat_weapons_005", g.Next("weapons"))
	})
}

func TestGeneratorZeroPadding(t *testing.T) {
	g := NewGenerator("prod")
	for i := 0; i < 12; i++ {
		id := g.Next("nail")
		assert.Equal(t, fmt.Sprintf("prod_nail_%03d", i), id)
	}
}
