// Package i18n catálogo de mensajes de la consola. Las claves son el texto en español;
// el inglés se registra como traducción.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.Spanish, language.English}

// Translator resuelve el idioma de cada petición y traduce claves del catálogo.
type Translator struct {
	cat     *catalog.Builder
	matcher language.Matcher
	tags    []language.Tag
	def     language.Tag
}

// New construye el catálogo. defaultLang se usa cuando Accept-Language no coincide con ningún idioma soportado.
func New(defaultLang string) *Translator {
	def := language.Spanish
	if tag, err := language.Parse(defaultLang); err == nil {
		if base, _ := tag.Base(); base.String() == "en" {
			def = language.English
		}
	}
	cat := catalog.NewBuilder(catalog.Fallback(def))
	for key, en := range english {
		_ = cat.SetString(language.Spanish, key, key)
		_ = cat.SetString(language.English, key, en)
	}
	// el idioma por defecto va primero: el matcher lo elige cuando no hay coincidencia
	tags := []language.Tag{def}
	for _, t := range supported {
		if t != def {
			tags = append(tags, t)
		}
	}
	return &Translator{cat: cat, matcher: language.NewMatcher(tags), tags: tags, def: def}
}

// Default idioma por defecto.
func (t *Translator) Default() language.Tag { return t.def }

// Match negocia el idioma a partir de la cabecera Accept-Language.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.def
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.def
	}
	return t.tags[idx]
}

// Printer printer de x/text ligado al catálogo de la consola.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.cat))
}

// T traduce key al idioma tag. Claves desconocidas se devuelven tal cual.
func (t *Translator) T(tag language.Tag, key string, args ...any) string {
	return t.Printer(tag).Sprintf(key, args...)
}

// TL como T pero con el código de idioma en texto; lo usan las plantillas.
func (t *Translator) TL(lang, key string, args ...any) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = t.def
	}
	return t.T(tag, key, args...)
}

// Lang devuelve el código corto ("es", "en") de tag.
func Lang(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
