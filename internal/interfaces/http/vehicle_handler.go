package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// VehicleHandler páginas de vehículos, incluido el selector de estado en la tabla.
type VehicleHandler struct {
	*pages
	uc   *usecase.VehicleUseCase
	dash *usecase.DashboardUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(p *pages, uc *usecase.VehicleUseCase, dash *usecase.DashboardUseCase) *VehicleHandler {
	return &VehicleHandler{pages: p, uc: uc, dash: dash}
}

// List GET /dashboard/vehicles.
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	r := protected(c)
	view, err := h.dash.Load(r.ctx, r.token, r.scope, dto.SectionVehicles)
	if err != nil {
		return h.fail(c, err, "Error al cargar los vehículos", nil)
	}
	return h.render(c, fiber.StatusOK, "vehicles", fiber.Map{
		"Title":           h.t(c, "Vehículos"),
		"Section":         dto.SectionVehicles,
		"View":            view,
		"VehicleStatuses": stringsOf(entity.VehicleStatuses),
	})
}

// Show GET /dashboard/vehicles/:id.
func (h *VehicleHandler) Show(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar el vehículo", nil)
	}
	item.CompanyName = companyName(r, h.dash, item.CompanyID)
	return h.render(c, fiber.StatusOK, "vehicle_detail", fiber.Map{
		"Title":   item.PlateNumber,
		"Section": dto.SectionVehicles,
		"Item":    item,
	})
}

// New GET /dashboard/vehicles/new.
func (h *VehicleHandler) New(c *fiber.Ctx) error {
	r := protected(c)
	in := dto.VehicleForm{
		VehicleType: string(entity.VehicleBus),
		Status:      string(entity.VehicleActivo),
		CompanyID:   r.scope.CompanyID,
	}
	return h.form(c, fiber.StatusOK, "", in, failure{})
}

// Create POST /dashboard/vehicles.
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.VehicleForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if _, err := h.uc.Create(r.ctx, r.token, r.scope, in); err != nil {
		return h.fail(c, err, "Error al crear el vehículo", func(f failure) error {
			return h.form(c, f.status, "", in, f)
		})
	}
	return done(c, "/dashboard/vehicles", "created")
}

// Edit GET /dashboard/vehicles/:id/edit.
func (h *VehicleHandler) Edit(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar el vehículo", nil)
	}
	in := dto.VehicleForm{
		Brand:         item.Brand,
		Model:         item.Model,
		Year:          item.Year,
		VehicleType:   item.VehicleType,
		PlateNumber:   item.PlateNumber,
		CompanyNumber: item.CompanyNumber,
		VIN:           item.VIN,
		Status:        item.Status,
		CompanyID:     item.CompanyID,
	}
	return h.form(c, fiber.StatusOK, item.ID, in, failure{})
}

// Update POST /dashboard/vehicles/:id.
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in dto.VehicleForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	id := c.Params("id")
	if _, err := h.uc.Update(r.ctx, r.token, r.scope, id, in); err != nil {
		return h.fail(c, err, "Error al actualizar el vehículo", func(f failure) error {
			return h.form(c, f.status, id, in, f)
		})
	}
	return done(c, "/dashboard/vehicles", "updated")
}

// UpdateStatus POST /dashboard/vehicles/:id/status: PUT de solo el estado y vuelta a la tabla.
func (h *VehicleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if _, err := h.uc.UpdateStatus(r.ctx, r.token, r.scope, c.Params("id"), in); err != nil {
		return h.fail(c, err, "Error al cambiar el estado del vehículo", nil)
	}
	return done(c, "/dashboard/vehicles", "status")
}

// ConfirmDelete GET /dashboard/vehicles/:id/delete.
func (h *VehicleHandler) ConfirmDelete(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar el vehículo", nil)
	}
	return h.render(c, fiber.StatusOK, "confirm_delete", fiber.Map{
		"Section": dto.SectionVehicles,
		"Label":   item.PlateNumber + " · " + item.Brand + " " + item.Model,
		"Action":  "/dashboard/vehicles/" + item.ID + "/delete",
		"Back":    "/dashboard/vehicles",
	})
}

// Delete POST /dashboard/vehicles/:id/delete.
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	var in dto.ConfirmForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if err := h.uc.Delete(r.ctx, r.token, r.scope, c.Params("id"), in.Confirm); err != nil {
		return h.fail(c, err, "Error al eliminar el vehículo", nil)
	}
	return done(c, "/dashboard/vehicles", "deleted")
}

func (h *VehicleHandler) form(c *fiber.Ctx, status int, id string, in dto.VehicleForm, f failure) error {
	r := protected(c)
	opts, err := h.dash.Options(r.ctx, r.token, r.scope, false)
	if err != nil {
		return h.fail(c, err, "Error al cargar los datos", nil)
	}
	action, title := "/dashboard/vehicles", h.t(c, "Nuevo vehículo")
	if id != "" {
		action, title = "/dashboard/vehicles/"+id, h.t(c, "Editar vehículo")
	}
	return h.render(c, status, "vehicle_form", fiber.Map{
		"Title":           title,
		"Section":         dto.SectionVehicles,
		"Editing":         id != "",
		"Action":          action,
		"Form":            in,
		"View":            opts,
		"VehicleTypes":    stringsOf(entity.VehicleTypes),
		"VehicleStatuses": stringsOf(entity.VehicleStatuses),
		"Message":         f.message,
		"Errors":          nonNil(f.fields),
	})
}
