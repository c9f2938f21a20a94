package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi"
)

// AuthHandler vista de login, recepción del token, logout y restablecimiento de contraseña.
type AuthHandler struct {
	*pages
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(p *pages, uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{pages: p, uc: uc}
}

// Landing GET /. Con ?token= guarda el token y entra al panel; sin él limpia
// cualquier sesión previa y muestra el login.
func (h *AuthHandler) Landing(c *fiber.Ctx) error {
	if token := c.Query("token"); token != "" {
		h.uc.ClearSession(c.UserContext(), c.Cookies(h.cookie.Name))
		sess, err := h.uc.AcceptToken(c.UserContext(), token)
		if err != nil {
			h.cookie.clear(c)
			return h.renderLogin(c, fiber.StatusBadRequest, dto.LoginForm{}, failure{message: h.t(c, "Error al iniciar sesión")})
		}
		h.cookie.set(c, sess.ID)
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	h.uc.ClearSession(c.UserContext(), c.Cookies(h.cookie.Name))
	h.cookie.clear(c)
	return h.renderLogin(c, fiber.StatusOK, dto.LoginForm{}, failure{})
}

// ProviderLogin GET /login: inicio de sesión alojado por el proveedor de identidad.
func (h *AuthHandler) ProviderLogin(c *fiber.Ctx) error {
	return c.Redirect(h.uc.LoginURL(), fiber.StatusFound)
}

// Login godoc
// @Summary      Iniciar sesión con usuario y contraseña
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Usuario (correo)"
// @Param        password  formData  string  true  "Contraseña"
// @Success      303
// @Failure      401
// @Failure      422
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	sess, err := h.uc.PasswordLogin(c.UserContext(), in)
	if err != nil {
		f := h.classify(c, err, "Error al iniciar sesión")
		if f.signOut {
			f.status = fiber.StatusUnauthorized
			f.message = h.t(c, "Usuario o contraseña incorrectos")
			var apiErr *fleetapi.APIError
			if errors.As(err, &apiErr) && apiErr.Detail != "" {
				f.message = apiErr.Detail
			}
		}
		in.Password = ""
		return h.renderLogin(c, f.status, in, f)
	}
	h.cookie.set(c, sess.ID)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, status int, in dto.LoginForm, f failure) error {
	return h.render(c, status, "login", fiber.Map{
		"Title":   h.t(c, "Iniciar sesión"),
		"Form":    in,
		"Message": f.message,
		"Errors":  nonNil(f.fields),
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Cierra la sesión en el backend y sigue su logoutUrl; ante cualquier error limpia la sesión local y vuelve a "/".
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	res := h.uc.Logout(c.UserContext(), c.Cookies(h.cookie.Name))
	h.cookie.clear(c)
	return c.Redirect(res.RedirectURL, fiber.StatusSeeOther)
}

// ForgotForm GET /password/forgot: paso 1.
func (h *AuthHandler) ForgotForm(c *fiber.Ctx) error {
	return h.renderForgot(c, fiber.StatusOK, dto.ForgotPasswordForm{Email: c.Query("email")}, failure{})
}

// Forgot POST /password/forgot: solicita el código y pasa al paso 2.
func (h *AuthHandler) Forgot(c *fiber.Ctx) error {
	var in dto.ForgotPasswordForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	if err := h.uc.ForgotPassword(c.UserContext(), in); err != nil {
		return h.fail(c, err, "Error al enviar el código", func(f failure) error {
			return h.renderForgot(c, f.status, in, f)
		})
	}
	return c.Redirect("/password/reset?email="+url.QueryEscape(in.Email), fiber.StatusSeeOther)
}

func (h *AuthHandler) renderForgot(c *fiber.Ctx, status int, in dto.ForgotPasswordForm, f failure) error {
	return h.render(c, status, "password_forgot", fiber.Map{
		"Title":   h.t(c, "Restablecer contraseña"),
		"Form":    in,
		"Message": f.message,
		"Errors":  nonNil(f.fields),
	})
}

// ResetForm GET /password/reset: paso 2.
func (h *AuthHandler) ResetForm(c *fiber.Ctx) error {
	return h.renderReset(c, fiber.StatusOK, dto.ResetPasswordForm{Email: c.Query("email")}, failure{})
}

// Reset godoc
// @Summary      Restablecer contraseña (paso 2)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email             formData  string  true  "Correo"
// @Param        code              formData  string  true  "Código recibido"
// @Param        new_password      formData  string  true  "Nueva contraseña"
// @Param        confirm_password  formData  string  true  "Confirmación"
// @Success      303
// @Failure      422  "El paso 2 se vuelve a mostrar con el detail del backend"
// @Router       /password/reset [post]
func (h *AuthHandler) Reset(c *fiber.Ctx) error {
	var in dto.ResetPasswordForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	if err := h.uc.ResetPassword(c.UserContext(), in); err != nil {
		return h.fail(c, err, "Error al restablecer la contraseña", func(f failure) error {
			in.NewPassword, in.ConfirmPassword = "", ""
			return h.renderReset(c, f.status, in, f)
		})
	}
	return done(c, "/", "reset")
}

func (h *AuthHandler) renderReset(c *fiber.Ctx, status int, in dto.ResetPasswordForm, f failure) error {
	return h.render(c, status, "password_reset", fiber.Map{
		"Title":   h.t(c, "Restablecer contraseña"),
		"Form":    in,
		"Message": f.message,
		"Errors":  nonNil(f.fields),
	})
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
