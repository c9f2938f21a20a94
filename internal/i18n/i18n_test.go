package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslator_Match(t *testing.T) {
	tr := New("es")

	assert.Equal(t, "en", Lang(tr.Match("en-US,en;q=0.9")))
	assert.Equal(t, "es", Lang(tr.Match("es-CO")))
	assert.Equal(t, "es", Lang(tr.Match("fr-FR")))
	assert.Equal(t, "es", Lang(tr.Match("")))
	assert.Equal(t, "en", Lang(New("en").Match("de")))
}

func TestTranslator_T(t *testing.T) {
	tr := New("es")

	assert.Equal(t, "Companies", tr.T(language.English, "Empresas"))
	assert.Equal(t, "Empresas", tr.T(language.Spanish, "Empresas"))
	assert.Equal(t, "We sent a code to a@b.co", tr.T(language.English, "Le enviamos un código a %s", "a@b.co"))
	assert.Equal(t, "Texto sin traducir", tr.T(language.English, "Texto sin traducir"))
	assert.Equal(t, "Sign out", tr.TL("en", "Cerrar sesión"))
	assert.Equal(t, "Cerrar sesión", tr.TL("??", "Cerrar sesión"))
}

func TestCatalog_KeysHaveTranslations(t *testing.T) {
	for key, en := range english {
		assert.NotEmpty(t, en, key)
	}
}
