package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind DocumentKind
		err  error
	}{
		{
			name: "general config",
			data: `{"Traders": [], "Currencies": []}`,
			kind: KindGeneral,
		},
		{
			name: "ids config",
			data: `{"IDs": []}`,
			kind: KindIDs,
		},
		{
			name: "price config",
			data: `{"TraderCategories": []}`,
			kind: KindPrice,
		},
		{
			name: "traders without currencies is unknown",
			data: `{"Traders": []}`,
			kind: KindUnknown,
			err:  domain.ErrUnknownConfigFormat,
		},
		{
			name: "unrelated document is unknown",
			data: `{"foo": 1}`,
			kind: KindUnknown,
			err:  domain.ErrUnknownConfigFormat,
		},
		{
			name: "broken JSON",
			data: `{"IDs": `,
			kind: KindUnknown,
			err:  domain.ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Classify([]byte(tt.data))
			assert.Equal(t, tt.kind, kind)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentKindString(t *testing.T) {
	assert.Equal(t, "general", KindGeneral.String())
	assert.Equal(t, "ids", KindIDs.String())
	assert.Equal(t, "price", KindPrice.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
