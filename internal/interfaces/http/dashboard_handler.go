package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/usecase"
)

// DashboardHandler entrada al panel.
type DashboardHandler struct{}

// NewDashboardHandler construye el handler.
func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// Index GET /dashboard: primera sección del panel.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	return c.Redirect("/dashboard/companies", fiber.StatusSeeOther)
}

// request datos de la petición protegida que necesitan los casos de uso.
type request struct {
	ctx   context.Context
	token string
	scope usecase.Scope
}

func protected(c *fiber.Ctx) request {
	scope, _ := GetScope(c)
	return request{ctx: c.UserContext(), token: GetToken(c), scope: scope}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// companyName nombre de la empresa para páginas de detalle; vacío si no se pudo leer.
func companyName(r request, dash *usecase.DashboardUseCase, id string) string {
	opts, err := dash.Options(r.ctx, r.token, r.scope, false)
	if err != nil {
		return ""
	}
	for _, c := range opts.Companies {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
