package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// CompanyHandler maneja las páginas del recurso Company.
type CompanyHandler struct {
	*pages
	uc   *usecase.CompanyUseCase
	dash *usecase.DashboardUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(p *pages, uc *usecase.CompanyUseCase, dash *usecase.DashboardUseCase) *CompanyHandler {
	return &CompanyHandler{pages: p, uc: uc, dash: dash}
}

var companyStatuses = []string{entity.CompanyStatusActive, entity.CompanyStatusInactive}

// List GET /dashboard/companies. En alcance de empresa solo aparece la propia.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	r := protected(c)
	view, err := h.dash.Load(r.ctx, r.token, r.scope, dto.SectionCompanies)
	if err != nil {
		return h.fail(c, err, "Error al cargar las empresas", nil)
	}
	return h.render(c, fiber.StatusOK, "companies", fiber.Map{
		"Title":   h.t(c, "Empresas"),
		"Section": dto.SectionCompanies,
		"View":    view,
	})
}

// Show GET /dashboard/companies/:id.
func (h *CompanyHandler) Show(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar la empresa", nil)
	}
	return h.render(c, fiber.StatusOK, "company_detail", fiber.Map{
		"Title":   item.Name,
		"Section": dto.SectionCompanies,
		"Item":    item,
	})
}

// New GET /dashboard/companies/new.
func (h *CompanyHandler) New(c *fiber.Ctx) error {
	return h.form(c, fiber.StatusOK, "", dto.CompanyForm{Status: entity.CompanyStatusActive}, failure{})
}

// Create POST /dashboard/companies.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CompanyForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if _, err := h.uc.Create(r.ctx, r.token, r.scope, in); err != nil {
		return h.fail(c, err, "Error al crear la empresa", func(f failure) error {
			return h.form(c, f.status, "", in, f)
		})
	}
	return done(c, "/dashboard/companies", "created")
}

// Edit GET /dashboard/companies/:id/edit.
func (h *CompanyHandler) Edit(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar la empresa", nil)
	}
	in := dto.CompanyForm{
		Name:    item.Name,
		NIT:     item.NIT,
		Email:   item.Email,
		Phone:   item.Phone,
		Address: item.Address,
		Status:  item.Status,
	}
	return h.form(c, fiber.StatusOK, item.ID, in, failure{})
}

// Update POST /dashboard/companies/:id.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanyForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	id := c.Params("id")
	if _, err := h.uc.Update(r.ctx, r.token, r.scope, id, in); err != nil {
		return h.fail(c, err, "Error al actualizar la empresa", func(f failure) error {
			return h.form(c, f.status, id, in, f)
		})
	}
	return done(c, "/dashboard/companies", "updated")
}

// ConfirmDelete GET /dashboard/companies/:id/delete.
func (h *CompanyHandler) ConfirmDelete(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar la empresa", nil)
	}
	return h.render(c, fiber.StatusOK, "confirm_delete", fiber.Map{
		"Section": dto.SectionCompanies,
		"Label":   item.Name,
		"Action":  "/dashboard/companies/" + item.ID + "/delete",
		"Back":    "/dashboard/companies",
	})
}

// Delete POST /dashboard/companies/:id/delete. Requiere confirm=true.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	var in dto.ConfirmForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if err := h.uc.Delete(r.ctx, r.token, r.scope, c.Params("id"), in.Confirm); err != nil {
		return h.fail(c, err, "Error al eliminar la empresa", nil)
	}
	return done(c, "/dashboard/companies", "deleted")
}

func (h *CompanyHandler) form(c *fiber.Ctx, status int, id string, in dto.CompanyForm, f failure) error {
	action, title := "/dashboard/companies", h.t(c, "Nueva empresa")
	if id != "" {
		action, title = "/dashboard/companies/"+id, h.t(c, "Editar empresa")
	}
	return h.render(c, status, "company_form", fiber.Map{
		"Title":           title,
		"Section":         dto.SectionCompanies,
		"Editing":         id != "",
		"Action":          action,
		"Form":            in,
		"CompanyStatuses": companyStatuses,
		"Message":         f.message,
		"Errors":          nonNil(f.fields),
	})
}
