package assemble

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traderx-tools/traderx-convert/internal/dsl"
)

func TestOutputFiles(t *testing.T) {
	cfg, _, err := dsl.Parse("<CurrencyName> Rubles\n<Currency> Ruble100,100\n<Trader> Bob\n<Category> Weapons\nAK74,*,50,25\n")
	require.NoError(t, err)
	out, _, err := FromLineConfig(cfg, testOpts)
	require.NoError(t, err)

	files, err := out.Files("TraderXConfig")
	require.NoError(t, err)

	require.Contains(t, files, "TraderXConfig/CurrencySettings.json")
	require.Contains(t, files, "TraderXConfig/GeneralSettings.json")

	var categoryFiles, productFiles int
	for path := range files {
		switch {
		case strings.HasPrefix(path, "TraderXConfig/Categories/"):
			categoryFiles++
			assert.True(t, strings.HasSuffix(path, ".json"))
		case strings.HasPrefix(path, "TraderXConfig/Products/"):
			productFiles++
		}
	}
	assert.Equal(t, 1, categoryFiles)
	assert.Equal(t, 1, productFiles)

	// four-space indent, one document per file
	general := files["TraderXConfig/GeneralSettings.json"]
	assert.True(t, strings.HasPrefix(general, "{\n    \""), "expected 4-space indent, got %q", general[:20])

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(general), &doc))
	assert.Equal(t, "test-server", doc["serverID"])
}

func TestOutputFilesRejectsInvalidDocument(t *testing.T) {
	cfg, _, err := dsl.Parse("<Trader> Bob\n<Category> Weapons\nAK74,1,50,25\n")
	require.NoError(t, err)
	out, _, err := FromLineConfig(cfg, testOpts)
	require.NoError(t, err)

	out.General.AcceptedStates.CoefficientWorn = 3.5 // out of range

	_, err = out.Files("TraderXConfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "general settings")
}
