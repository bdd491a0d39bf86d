package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorLookup(t *testing.T) {
	uz := NewTranslator(LocaleUz)
	ru := NewTranslator(LocaleRu)

	assert.Equal(t, "Katalog", uz.T("nav.catalog"))
	assert.Equal(t, "Каталог", ru.T("nav.catalog"))
	assert.NotEqual(t, uz.T("common.currency"), ru.T("common.currency"))
}

func TestTranslatorFallsBackToKey(t *testing.T) {
	tr := NewTranslator(LocaleUz)
	assert.Equal(t, "nav.doesNotExist", tr.T("nav.doesNotExist"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, LocaleRu, Resolve("ru", ""))
	assert.Equal(t, LocaleUz, Resolve("uz", "ru"))

	// Header only.
	assert.Equal(t, LocaleRu, Resolve("", "ru-RU,ru;q=0.9"))
	assert.Equal(t, LocaleUz, Resolve("", "uz-UZ,uz;q=0.9"))

	// Unknown everything defaults to Uzbek.
	assert.Equal(t, LocaleUz, Resolve("", ""))
	assert.Equal(t, LocaleUz, Resolve("fr", "garbage"))
}
