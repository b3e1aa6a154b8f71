package convert

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

const lineConfig = "<CurrencyName> Rubles\n<Currency> Ruble100,100\n<Trader> Bob\n<Category> Weapons\nAK74,*,50,25\n"

var legacyDocs = map[string]string{
	"general": `{"Currencies":[{"ClassName":"Euro100","Value":100}],"Licences":[],"Traders":[{"Id":0,"GivenName":"Boris"}]}`,
	"ids":     `{"IDs":[{"Id":0,"Categories":["Weapons"]}]}`,
	"price":   `{"TraderCategories":[{"CategoryName":"Weapons","Products":["AK74,1,-1,1,3000,1500"]}]}`,
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(Config{OutputRoot: "TraderXConfig", DefaultCurrency: "EUR", CacheSize: 8})
	require.NoError(t, err)
	return svc
}

func TestConvertTraderConfig(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ConvertTraderConfig(context.Background(), lineConfig)
	require.NoError(t, err)

	assert.False(t, result.Empty())
	assert.Contains(t, result.Files, "TraderXConfig/CurrencySettings.json")
	assert.Contains(t, result.Files, "TraderXConfig/GeneralSettings.json")
}

func TestConvertTraderConfigCached(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.ConvertTraderConfig(context.Background(), lineConfig)
	require.NoError(t, err)
	second, err := svc.ConvertTraderConfig(context.Background(), lineConfig)
	require.NoError(t, err)

	// identical input is served from cache, byte for byte
	assert.Equal(t, first, second)
}

func TestConvertTraderConfigErrors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ConvertTraderConfig(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = svc.ConvertTraderConfig(context.Background(), "<CurrencyName> Rubles\n")
	assert.ErrorIs(t, err, domain.ErrNoTraderData)
}

func TestSessionDeferredUntilTriplet(t *testing.T) {
	svc := newTestService(t)
	session := svc.NewSession()
	ctx := context.Background()

	result, err := session.Submit(ctx, []byte(legacyDocs["price"]))
	require.NoError(t, err)
	assert.True(t, result.Empty(), "price config alone must yield an empty map")
	assert.False(t, session.Complete())

	result, err = session.Submit(ctx, []byte(legacyDocs["ids"]))
	require.NoError(t, err)
	assert.True(t, result.Empty())

	result, err = session.Submit(ctx, []byte(legacyDocs["general"]))
	require.NoError(t, err)
	assert.False(t, result.Empty())
	assert.True(t, session.Complete())
}

// Submission order must not matter.
func TestSessionOrderIndependent(t *testing.T) {
	orders := [][]string{
		{"general", "ids", "price"},
		{"general", "price", "ids"},
		{"ids", "general", "price"},
		{"ids", "price", "general"},
		{"price", "general", "ids"},
		{"price", "ids", "general"},
	}

	for _, order := range orders {
		svc := newTestService(t)
		session := svc.NewSession()
		ctx := context.Background()

		var last *Result
		for i, key := range order {
			result, err := session.Submit(ctx, []byte(legacyDocs[key]))
			require.NoError(t, err, "order %v step %d", order, i)
			if i < len(order)-1 {
				assert.True(t, result.Empty(), "order %v step %d should be deferred", order, i)
			}
			last = result
		}

		require.False(t, last.Empty(), "order %v should produce output", order)
		countGeneral := 0
		countCurrency := 0
		for path := range last.Files {
			switch path {
			case "TraderXConfig/GeneralSettings.json":
				countGeneral++
			case "TraderXConfig/CurrencySettings.json":
				countCurrency++
			}
		}
		assert.Equal(t, 1, countGeneral, "order %v", order)
		assert.Equal(t, 1, countCurrency, "order %v", order)
	}
}

func TestSessionResubmissionReplaces(t *testing.T) {
	svc := newTestService(t)
	session := svc.NewSession()
	ctx := context.Background()

	_, err := session.Submit(ctx, []byte(legacyDocs["general"]))
	require.NoError(t, err)
	_, err = session.Submit(ctx, []byte(legacyDocs["ids"]))
	require.NoError(t, err)
	_, err = session.Submit(ctx, []byte(legacyDocs["price"]))
	require.NoError(t, err)

	// replace the price config; output reflects the new document
	result, err := session.Submit(ctx, []byte(`{"TraderCategories":[{"CategoryName":"Food","Products":["Apple,1,-1,1,10,5"]}]}`))
	require.NoError(t, err)

	foundFood := false
	for path, content := range result.Files {
		if strings.HasPrefix(path, "TraderXConfig/Categories/") && strings.Contains(content, "Food") {
			foundFood = true
		}
	}
	assert.True(t, foundFood, "replaced price config should surface in output")
}

func TestSessionRejectsUnknownDocument(t *testing.T) {
	svc := newTestService(t)
	session := svc.NewSession()

	_, err := session.Submit(context.Background(), []byte(`{"Unexpected": true}`))
	assert.ErrorIs(t, err, domain.ErrUnknownConfigFormat)
}

func TestSkippedRowsCountsOnlyDroppedRows(t *testing.T) {
	diags := []domain.Diagnostic{
		domain.SkipDiagf(3, "product row with fewer than 4 fields skipped"),
		domain.Diagf(0, "no currency name in source, defaulting to EUR"),
		domain.SkipDiagf(9, "unrecognized line skipped"),
		domain.Diagf(0, "product \"AK74\": negative quantity -2 clamped to 0"),
	}

	assert.Equal(t, 2, skippedRows(diags))
	assert.Equal(t, 0, skippedRows(nil))
}
