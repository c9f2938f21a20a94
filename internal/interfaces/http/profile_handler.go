package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain"
)

// ProfileHandler edición del propio perfil.
type ProfileHandler struct {
	*pages
	users *usecase.UserUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(p *pages, users *usecase.UserUseCase) *ProfileHandler {
	return &ProfileHandler{pages: p, users: users}
}

// Show GET /dashboard/profile.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	r := protected(c)
	in := dto.ProfileForm{
		Name:           r.scope.Me.Name,
		Email:          r.scope.Me.Email,
		Identification: r.scope.Me.Identification,
	}
	return h.form(c, fiber.StatusOK, in, failure{})
}

// Update POST /dashboard/profile. Si el backend avisa que el cambio exige volver a
// iniciar sesión, la sesión se cierra en el acto y se muestra el aviso.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.ProfileForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	res, err := h.users.UpdateProfile(r.ctx, r.token, r.scope.Me, in)
	if err != nil {
		return h.fail(c, err, "Error al actualizar el perfil", func(f failure) error {
			if errors.Is(err, domain.ErrConfirmationRequired) {
				f.fields = map[string]string{"confirm_email_change": f.message}
			}
			return h.form(c, f.status, in, f)
		})
	}
	if res.ForceLogout {
		h.log.Info().Str("user", r.scope.Me.ID).Msg("perfil actualizado; la sesión se cierra por aviso del backend")
		h.auth.ClearSession(r.ctx, c.Cookies(h.cookie.Name))
		h.cookie.clear(c)
		return h.render(c, fiber.StatusOK, "signed_out", fiber.Map{
			"Title":   h.t(c, "Sesión cerrada"),
			"Warning": res.Warning,
		})
	}
	return done(c, "/dashboard/profile", "profile")
}

func (h *ProfileHandler) form(c *fiber.Ctx, status int, in dto.ProfileForm, f failure) error {
	return h.render(c, status, "profile", fiber.Map{
		"Title":   h.t(c, "Mi perfil"),
		"Section": "profile",
		"Form":    in,
		"Warning": "",
		"Message": f.message,
		"Errors":  nonNil(f.fields),
	})
}
