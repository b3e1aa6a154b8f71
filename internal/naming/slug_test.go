package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		expected string
	}{
		{
			name:     "lowercases and strips spaces",
			input:    "Assault Rifles",
			fallback: "category",
			expected: "assaultrifles",
		},
		{
			name:     "removes punctuation",
			input:    "Food & Drinks!",
			fallback: "category",
			expected: "fooddrinks",
		},
		{
			name:     "keeps digits and underscores",
			input:    "Tier_2 Gear",
			fallback: "category",
			expected: "tier_2gear",
		},
		{
			name:     "empty input falls back",
			input:    "",
			fallback: "unnamed",
			expected: "unnamed",
		},
		{
			name:     "only symbols falls back",
			input:    "###",
			fallback: "unnamed",
			expected: "unnamed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.input, tt.fallback))
		})
	}
}

// Re-slugging a slug must yield the same slug.
func TestSlugIdempotent(t *testing.T) {
	names := []string{"Assault Rifles", "Food & Drinks", "Tier_2 Gear", "AK74"}
	for _, name := range names {
		once := Slug(name, "x")
		assert.Equal(t, once, Slug(once, "x"), "slug of %q not idempotent", name)
	}
}
