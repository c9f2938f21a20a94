package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/i18n"
)

// Locals keys de la sesión, el alcance y el idioma en Fiber.
const (
	LocalSession = "session"
	LocalScope   = "scope"
	LocalLang    = "lang"
)

const langCookie = "lang"

// AuthGate verifica la sesión contra el backend en cada navegación protegida.
// Sin sesión o con verificación fallida se borra la cookie y se redirige a "/".
func AuthGate(gate *auth.Gate, cookie SessionCookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := gate.Check(c.UserContext(), c.Cookies(cookie.Name))
		if err != nil {
			cookie.clear(c)
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// ResolveScope consulta /users/me y fija el alcance del panel (global o empresa).
// Roles sin acceso a la consola reciben la página de acceso denegado.
func ResolveScope(dash *usecase.DashboardUseCase, p *pages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, err := dash.Scope(c.UserContext(), GetToken(c))
		switch {
		case err == nil:
			c.Locals(LocalScope, scope)
			return c.Next()
		case errors.Is(err, domain.ErrForbidden):
			return p.render(c, fiber.StatusForbidden, "forbidden", fiber.Map{"Title": p.t(c, "Sin acceso")})
		}
		return p.fail(c, err, "Error al cargar los datos", nil)
	}
}

// Locale negocia el idioma: ?lang= (recordado en cookie), cookie o Accept-Language.
func Locale(tr *i18n.Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tag language.Tag
		switch {
		case c.Query("lang") != "":
			tag = tr.Match(c.Query("lang"))
			c.Cookie(&fiber.Cookie{Name: langCookie, Value: i18n.Lang(tag), Path: "/", SameSite: fiber.CookieSameSiteLaxMode})
		case c.Cookies(langCookie) != "":
			tag = tr.Match(c.Cookies(langCookie))
		default:
			tag = tr.Match(c.Get(fiber.HeaderAcceptLanguage))
		}
		c.Locals(LocalLang, tag)
		return c.Next()
	}
}

// GetSession devuelve la sesión verificada (después de AuthGate).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}

// GetToken devuelve el bearer token de la sesión verificada.
func GetToken(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.Token
	}
	return ""
}

// GetScope devuelve el alcance resuelto (después de ResolveScope).
func GetScope(c *fiber.Ctx) (usecase.Scope, bool) {
	s, ok := c.Locals(LocalScope).(usecase.Scope)
	return s, ok
}

// GetLang idioma negociado; español si Locale no corrió.
func GetLang(c *fiber.Ctx) language.Tag {
	if tag, ok := c.Locals(LocalLang).(language.Tag); ok {
		return tag
	}
	return language.Spanish
}
