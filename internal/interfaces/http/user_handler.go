package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// UserHandler páginas de usuarios.
type UserHandler struct {
	*pages
	uc   *usecase.UserUseCase
	dash *usecase.DashboardUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(p *pages, uc *usecase.UserUseCase, dash *usecase.DashboardUseCase) *UserHandler {
	return &UserHandler{pages: p, uc: uc, dash: dash}
}

var userStatuses = []string{"active", "inactive"}

// List GET /dashboard/users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	r := protected(c)
	view, err := h.dash.Load(r.ctx, r.token, r.scope, dto.SectionUsers)
	if err != nil {
		return h.fail(c, err, "Error al cargar los usuarios", nil)
	}
	return h.render(c, fiber.StatusOK, "users", fiber.Map{
		"Title":   h.t(c, "Usuarios"),
		"Section": dto.SectionUsers,
		"View":    view,
	})
}

// Show GET /dashboard/users/:id.
func (h *UserHandler) Show(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar el usuario", nil)
	}
	item.CompanyName = companyName(r, h.dash, item.CompanyID)
	return h.render(c, fiber.StatusOK, "user_detail", fiber.Map{
		"Title":   item.Name,
		"Section": dto.SectionUsers,
		"Item":    item,
	})
}

// New GET /dashboard/users/new.
func (h *UserHandler) New(c *fiber.Ctx) error {
	r := protected(c)
	in := dto.UserForm{Status: "active", Role: string(entity.RoleConductor), CompanyID: r.scope.CompanyID}
	return h.form(c, fiber.StatusOK, "", in, failure{})
}

// Create POST /dashboard/users.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if _, err := h.uc.Create(r.ctx, r.token, r.scope, in); err != nil {
		return h.fail(c, err, "Error al crear el usuario", func(f failure) error {
			return h.form(c, f.status, "", in, f)
		})
	}
	return done(c, "/dashboard/users", "created")
}

// Edit GET /dashboard/users/:id/edit.
func (h *UserHandler) Edit(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar el usuario", nil)
	}
	in := dto.UserForm{
		Name:           item.Name,
		Email:          item.Email,
		Identification: item.Identification,
		Role:           item.Role,
		Status:         item.Status,
		CompanyID:      item.CompanyID,
	}
	return h.form(c, fiber.StatusOK, item.ID, in, failure{})
}

// Update POST /dashboard/users/:id.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	id := c.Params("id")
	if _, err := h.uc.Update(r.ctx, r.token, r.scope, id, in); err != nil {
		return h.fail(c, err, "Error al actualizar el usuario", func(f failure) error {
			return h.form(c, f.status, id, in, f)
		})
	}
	return done(c, "/dashboard/users", "updated")
}

// ConfirmDelete GET /dashboard/users/:id/delete.
func (h *UserHandler) ConfirmDelete(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar el usuario", nil)
	}
	return h.render(c, fiber.StatusOK, "confirm_delete", fiber.Map{
		"Section": dto.SectionUsers,
		"Label":   item.Name + " <" + item.Email + ">",
		"Action":  "/dashboard/users/" + item.ID + "/delete",
		"Back":    "/dashboard/users",
	})
}

// Delete POST /dashboard/users/:id/delete.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.ConfirmForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if err := h.uc.Delete(r.ctx, r.token, r.scope, c.Params("id"), in.Confirm); err != nil {
		return h.fail(c, err, "Error al eliminar el usuario", nil)
	}
	return done(c, "/dashboard/users", "deleted")
}

func (h *UserHandler) form(c *fiber.Ctx, status int, id string, in dto.UserForm, f failure) error {
	r := protected(c)
	opts, err := h.dash.Options(r.ctx, r.token, r.scope, false)
	if err != nil {
		return h.fail(c, err, "Error al cargar los datos", nil)
	}
	roles := entity.Roles
	if !r.scope.Global {
		roles = nil
		for _, role := range entity.Roles {
			if !role.Privileged() {
				roles = append(roles, role)
			}
		}
	}
	action, title := "/dashboard/users", h.t(c, "Nuevo usuario")
	if id != "" {
		action, title = "/dashboard/users/"+id, h.t(c, "Editar usuario")
	}
	return h.render(c, status, "user_form", fiber.Map{
		"Title":        title,
		"Section":      dto.SectionUsers,
		"Editing":      id != "",
		"Action":       action,
		"Form":         in,
		"View":         opts,
		"Roles":        stringsOf(roles),
		"UserStatuses": userStatuses,
		"Message":      f.message,
		"Errors":       nonNil(f.fields),
	})
}
