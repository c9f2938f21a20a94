package http

import (
	"github.com/gofiber/fiber/v2"
)

// RequireGlobalScope restringe la ruta al alcance global (ADMIN).
// Debe usarse DESPUÉS de ResolveScope (necesita LocalScope).
//
// Comportamiento:
//   - 403 Forbidden → alcance de empresa (ADMINISTRATIVO).
//   - Si no hay alcance en el contexto, redirige al login.
func RequireGlobalScope(p *pages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, ok := GetScope(c)
		if !ok {
			return p.signOut(c)
		}
		if !scope.CanManageCompanies() {
			return p.render(c, fiber.StatusForbidden, "error", fiber.Map{
				"Message": p.t(c, "No tiene permiso para esta operación"),
				"Back":    "/dashboard/companies",
			})
		}
		return c.Next()
	}
}
