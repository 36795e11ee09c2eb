package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeLoadsEmbeddedLocales(t *testing.T) {
	require.NoError(t, Initialize())
	assert.Equal(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
}

func TestTranslate(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "In Stock", T("en", KeyProductInStock))
	assert.Equal(t, "有貨", T("zh_TW", KeyProductInStock))
	assert.Equal(t, "Brand: Acme", T("en", KeyProductBrand, "Acme"))
	assert.Equal(t, "Stock: 5", T("en", KeyProductStock, 5))
}

func TestTranslateFallsBack(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "Out of Stock", T("fr", KeyProductOutOfStock))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestLocalesHaveSameKeys(t *testing.T) {
	require.NoError(t, Initialize())

	en := instance.translations["en"]
	zh := instance.translations["zh_TW"]
	for key := range en {
		assert.Contains(t, zh, key)
	}
	assert.Len(t, zh, len(en))
}
