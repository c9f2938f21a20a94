package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// SessionHandler sondeo del Auth Gate desde las páginas protegidas.
type SessionHandler struct {
	gate   *auth.Gate
	cookie SessionCookie
}

// NewSessionHandler construye el handler.
func NewSessionHandler(gate *auth.Gate, cookie SessionCookie) *SessionHandler {
	return &SessionHandler{gate: gate, cookie: cookie}
}

// Status godoc
// @Summary      Estado de la sesión
// @Description  Re-verifica el token si el chequeo está vencido. unverified implica volver al login.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionStatusResponse
// @Failure      401  {object}  dto.SessionStatusResponse
// @Router       /api/session [get]
func (h *SessionHandler) Status(c *fiber.Ctx) error {
	sess, err := h.gate.Poll(c.UserContext(), c.Cookies(h.cookie.Name))
	if err != nil {
		h.cookie.clear(c)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.SessionStatusResponse{State: string(entity.GateUnverified)})
	}
	out := dto.SessionStatusResponse{State: string(sess.State)}
	if !sess.NextCheckAt.IsZero() {
		out.NextCheckAt = sess.NextCheckAt.UTC().Format(time.RFC3339)
	}
	if !sess.TokenExpiresAt.IsZero() {
		out.TokenExpiresAt = sess.TokenExpiresAt.UTC().Format(time.RFC3339)
	}
	return c.JSON(out)
}
