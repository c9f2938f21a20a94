// Package views plantillas HTML de la consola, embebidas en el binario.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/busfleet-console/internal/i18n"
)

//go:embed layouts/*.html *.html
var files embed.FS

// Layout plantilla base de todas las páginas.
const Layout = "layouts/main"

// New motor de plantillas con las funciones de la consola.
func New(tr *i18n.Translator) *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("t", tr.TL)
	return engine
}
