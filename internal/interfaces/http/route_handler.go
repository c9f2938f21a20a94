package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// RouteHandler páginas de rutas: tabla con selector de estado, formulario y hoja PDF.
type RouteHandler struct {
	*pages
	uc       *usecase.RouteUseCase
	vehicles *usecase.VehicleUseCase
	sheets   *usecase.RouteSheetUseCase
	dash     *usecase.DashboardUseCase
}

// NewRouteHandler construye el handler.
func NewRouteHandler(p *pages, uc *usecase.RouteUseCase, vehicles *usecase.VehicleUseCase, sheets *usecase.RouteSheetUseCase, dash *usecase.DashboardUseCase) *RouteHandler {
	return &RouteHandler{pages: p, uc: uc, vehicles: vehicles, sheets: sheets, dash: dash}
}

// List GET /dashboard/routes.
func (h *RouteHandler) List(c *fiber.Ctx) error {
	r := protected(c)
	view, err := h.dash.Load(r.ctx, r.token, r.scope, dto.SectionRoutes)
	if err != nil {
		return h.fail(c, err, "Error al cargar las rutas", nil)
	}
	return h.render(c, fiber.StatusOK, "routes", fiber.Map{
		"Title":         h.t(c, "Rutas"),
		"Section":       dto.SectionRoutes,
		"View":          view,
		"RouteStatuses": stringsOf(entity.RouteStatuses),
	})
}

// Show GET /dashboard/routes/:id. Es también el destino del QR de la hoja de ruta.
func (h *RouteHandler) Show(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar la ruta", nil)
	}
	item.CompanyName = companyName(r, h.dash, item.CompanyID)
	item.VehiclePlate = h.plate(r, item.VehicleID)
	return h.render(c, fiber.StatusOK, "route_detail", fiber.Map{
		"Title":   item.Name,
		"Section": dto.SectionRoutes,
		"Item":    item,
	})
}

// Sheet GET /dashboard/routes/:id/sheet.pdf.
func (h *RouteHandler) Sheet(c *fiber.Ctx) error {
	r := protected(c)
	doc, name, err := h.sheets.Render(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al generar la hoja de ruta", nil)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(doc)
}

// New GET /dashboard/routes/new.
func (h *RouteHandler) New(c *fiber.Ctx) error {
	r := protected(c)
	in := dto.RouteForm{
		Status:    string(entity.RouteActiva),
		CompanyID: r.scope.CompanyID,
	}
	return h.form(c, fiber.StatusOK, "", in, failure{})
}

// Create POST /dashboard/routes.
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var in dto.RouteForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if _, err := h.uc.Create(r.ctx, r.token, r.scope, in); err != nil {
		return h.fail(c, err, "Error al crear la ruta", func(f failure) error {
			return h.form(c, f.status, "", in, f)
		})
	}
	return done(c, "/dashboard/routes", "created")
}

// Edit GET /dashboard/routes/:id/edit.
func (h *RouteHandler) Edit(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar la ruta", nil)
	}
	in := dto.RouteForm{
		Name:                item.Name,
		StartPoint:          item.StartPoint,
		EndPoint:            item.EndPoint,
		DepartureDate:       item.DepartureDate,
		DepartureTime:       item.DepartureTime,
		DurationDays:        item.DurationDays,
		DurationHours:       item.DurationHours,
		DurationMinutes:     item.DurationMinutes,
		RepetitionFrequency: item.RepetitionFrequency,
		RepetitionPeriod:    item.RepetitionPeriod,
		Status:              item.Status,
		CompanyID:           item.CompanyID,
		VehicleID:           item.VehicleID,
	}
	for _, s := range item.Stops {
		in.StopLocations = append(in.StopLocations, s.Location)
		in.StopMinutes = append(in.StopMinutes, s.StopMinutes)
	}
	return h.form(c, fiber.StatusOK, item.ID, in, failure{})
}

// Update POST /dashboard/routes/:id.
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	var in dto.RouteForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	id := c.Params("id")
	if _, err := h.uc.Update(r.ctx, r.token, r.scope, id, in); err != nil {
		return h.fail(c, err, "Error al actualizar la ruta", func(f failure) error {
			return h.form(c, f.status, id, in, f)
		})
	}
	return done(c, "/dashboard/routes", "updated")
}

// UpdateStatus POST /dashboard/routes/:id/status.
func (h *RouteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if _, err := h.uc.UpdateStatus(r.ctx, r.token, r.scope, c.Params("id"), in); err != nil {
		return h.fail(c, err, "Error al cambiar el estado de la ruta", nil)
	}
	return done(c, "/dashboard/routes", "status")
}

// ConfirmDelete GET /dashboard/routes/:id/delete.
func (h *RouteHandler) ConfirmDelete(c *fiber.Ctx) error {
	r := protected(c)
	item, err := h.uc.GetByID(r.ctx, r.token, r.scope, c.Params("id"))
	if err != nil {
		return h.fail(c, err, "Error al cargar la ruta", nil)
	}
	return h.render(c, fiber.StatusOK, "confirm_delete", fiber.Map{
		"Section": dto.SectionRoutes,
		"Label":   item.Name + " (" + item.StartPoint + " → " + item.EndPoint + ")",
		"Action":  "/dashboard/routes/" + item.ID + "/delete",
		"Back":    "/dashboard/routes",
	})
}

// Delete POST /dashboard/routes/:id/delete.
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	var in dto.ConfirmForm
	if err := c.BodyParser(&in); err != nil {
		return h.badForm(c, err)
	}
	r := protected(c)
	if err := h.uc.Delete(r.ctx, r.token, r.scope, c.Params("id"), in.Confirm); err != nil {
		return h.fail(c, err, "Error al eliminar la ruta", nil)
	}
	return done(c, "/dashboard/routes", "deleted")
}

func (h *RouteHandler) form(c *fiber.Ctx, status int, id string, in dto.RouteForm, f failure) error {
	r := protected(c)
	opts, err := h.dash.Options(r.ctx, r.token, r.scope, true)
	if err != nil {
		return h.fail(c, err, "Error al cargar los datos", nil)
	}
	// Al editar, el vehículo ya asignado se conserva aunque ya no esté ACTIVO.
	current := ""
	if id != "" && in.VehicleID != "" && !assignable(opts.AssignableVehicles[in.CompanyID], in.VehicleID) {
		current = h.plate(r, in.VehicleID) + " · " + h.t(c, "actual")
	}
	action, title := "/dashboard/routes", h.t(c, "Nueva ruta")
	if id != "" {
		action, title = "/dashboard/routes/"+id, h.t(c, "Editar ruta")
	}
	return h.render(c, status, "route_form", fiber.Map{
		"Title":          title,
		"Section":        dto.SectionRoutes,
		"Editing":        id != "",
		"Action":         action,
		"Form":           in,
		"Stops":          stopRows(in),
		"View":           opts,
		"CurrentVehicle": current,
		"RouteStatuses":  stringsOf(entity.RouteStatuses),
		"Periods":        stringsOf(entity.RepetitionPeriods),
		"Message":        f.message,
		"Errors":         nonNil(f.fields),
	})
}

// plate placa del vehículo o su id si no se pudo leer.
func (h *RouteHandler) plate(r request, vehicleID string) string {
	if vehicleID == "" {
		return ""
	}
	v, err := h.vehicles.GetByID(r.ctx, r.token, r.scope, vehicleID)
	if err != nil {
		return vehicleID
	}
	return v.PlateNumber
}

func assignable(options []dto.VehicleResponse, id string) bool {
	for _, v := range options {
		if v.ID == id {
			return true
		}
	}
	return false
}

// stopRows alinea lugares y minutos por índice; siempre deja una fila vacía para agregar.
func stopRows(in dto.RouteForm) []dto.StopResponse {
	rows := make([]dto.StopResponse, 0, len(in.StopLocations)+1)
	for i, loc := range in.StopLocations {
		row := dto.StopResponse{Location: loc}
		if i < len(in.StopMinutes) {
			row.StopMinutes = in.StopMinutes[i]
		}
		rows = append(rows, row)
	}
	return append(rows, dto.StopResponse{})
}
