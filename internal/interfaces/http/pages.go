package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/i18n"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi"
	"github.com/jhoicas/busfleet-console/internal/interfaces/http/views"
	"github.com/jhoicas/busfleet-console/pkg/logger"
)

// SessionCookie cookie que lleva el id opaco de la sesión.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (sc SessionCookie) set(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     sc.Name,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(sc.TTL),
		HTTPOnly: true,
		Secure:   sc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (sc SessionCookie) clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   sc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// pages utilidades compartidas por los handlers que renderizan HTML.
type pages struct {
	tr          *i18n.Translator
	auth        *auth.AuthUseCase
	cookie      SessionCookie
	pollSeconds int
	log         *logger.Logger
}

// nav datos de la barra superior de las páginas protegidas.
type nav struct {
	MeName             string
	Role               string
	Global             bool
	CanManageCompanies bool
}

// notices mensajes tras post/redirect/get, por valor de ?done=.
var notices = map[string]string{
	"created": "Registro creado",
	"updated": "Registro actualizado",
	"deleted": "Registro eliminado",
	"status":  "Estado actualizado",
	"profile": "Perfil actualizado",
	"reset":   "Contraseña actualizada. Inicie sesión.",
}

// render completa los datos comunes y pinta view dentro del layout.
func (p *pages) render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	lang := GetLang(c)
	data["Lang"] = i18n.Lang(lang)
	data["PollSeconds"] = p.pollSeconds
	for _, key := range []string{"Section", "Message", "Notice", "Title"} {
		if _, ok := data[key]; !ok {
			data[key] = ""
		}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	if key, ok := notices[c.Query("done")]; ok && data["Notice"] == "" {
		data["Notice"] = p.tr.T(lang, key)
	}
	if scope, ok := GetScope(c); ok && scope.Me != nil {
		data["Nav"] = nav{
			MeName:             scope.Me.Name,
			Role:               string(scope.Me.Role),
			Global:             scope.Global,
			CanManageCompanies: scope.CanManageCompanies(),
		}
	}
	return c.Status(status).Render(view, data, views.Layout)
}

// t traduce key al idioma de la petición.
func (p *pages) t(c *fiber.Ctx, key string, args ...any) string {
	return p.tr.T(GetLang(c), key, args...)
}

// failure clasificación de un error para la interfaz.
type failure struct {
	status  int
	message string
	fields  map[string]string
	signOut bool
}

// classify traduce un error de caso de uso a estado HTTP y mensaje localizado.
// El detail del backend se muestra tal cual; si no hay, se usa fallback.
func (p *pages) classify(c *fiber.Ctx, err error, fallback string) failure {
	var verr *usecase.ValidationError
	var apiErr *fleetapi.APIError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return failure{status: fiber.StatusUnauthorized, signOut: true}
	case errors.As(err, &verr):
		fields := make(map[string]string, len(verr.Fields))
		for k, v := range verr.Fields {
			fields[k] = p.t(c, v)
		}
		return failure{status: fiber.StatusUnprocessableEntity, message: p.t(c, "Revise los campos marcados"), fields: fields}
	case errors.Is(err, domain.ErrConfirmationRequired):
		return failure{status: fiber.StatusUnprocessableEntity, message: p.t(c, "Debe confirmar la operación")}
	case errors.As(err, &apiErr) && apiErr.Detail != "" && apiErr.Status < 500:
		status := fiber.StatusUnprocessableEntity
		switch apiErr.Status {
		case fiber.StatusForbidden, fiber.StatusNotFound:
			status = apiErr.Status
		}
		return failure{status: status, message: apiErr.Detail}
	case errors.Is(err, domain.ErrForbidden):
		return failure{status: fiber.StatusForbidden, message: p.t(c, "No tiene permiso para esta operación")}
	case errors.Is(err, domain.ErrNotFound):
		return failure{status: fiber.StatusNotFound, message: p.t(c, "Registro no encontrado")}
	case errors.Is(err, domain.ErrInvalidInput):
		return failure{status: fiber.StatusUnprocessableEntity, message: p.t(c, fallback)}
	case errors.Is(err, domain.ErrBackendUnavailable):
		return failure{status: fiber.StatusBadGateway, message: p.t(c, fallback)}
	}
	return failure{status: fiber.StatusInternalServerError, message: p.t(c, fallback)}
}

// fail resuelve un error: 401 cierra la sesión; con rerender el formulario sigue abierto;
// sin él se muestra la página de error.
func (p *pages) fail(c *fiber.Ctx, err error, fallback string, rerender func(failure) error) error {
	f := p.classify(c, err, fallback)
	if f.signOut {
		p.log.Info().Err(err).Str("path", c.Path()).Msg("sesión rechazada por el backend")
		return p.signOut(c)
	}
	if f.status >= fiber.StatusInternalServerError {
		p.log.Error().Err(err).Str("path", c.Path()).Msg(fallback)
	} else {
		p.log.Debug().Err(err).Str("path", c.Path()).Int("status", f.status).Msg("operación rechazada")
	}
	if rerender != nil {
		return rerender(f)
	}
	return p.render(c, f.status, "error", fiber.Map{"Message": f.message, "Back": backLink(c)})
}

// signOut borra la sesión local y vuelve al login.
func (p *pages) signOut(c *fiber.Ctx) error {
	p.auth.ClearSession(c.UserContext(), c.Cookies(p.cookie.Name))
	p.cookie.clear(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// badForm cuerpo de formulario que no se pudo decodificar.
func (p *pages) badForm(c *fiber.Ctx, err error) error {
	p.log.Debug().Err(err).Str("path", c.Path()).Msg("formulario inválido")
	return p.render(c, fiber.StatusBadRequest, "error", fiber.Map{"Message": p.t(c, "Formulario inválido"), "Back": backLink(c)})
}

// backLink solo se aceptan rutas locales del panel.
func backLink(c *fiber.Ctx) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return "/dashboard"
	}
	base := c.BaseURL()
	if len(ref) > len(base) && ref[:len(base)] == base {
		return ref[len(base):]
	}
	return "/dashboard"
}

func done(c *fiber.Ctx, path, what string) error {
	return c.Redirect(path+"?done="+what, fiber.StatusSeeOther)
}
