package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

// RouteSheetRenderer genera el documento de la hoja de ruta.
type RouteSheetRenderer interface {
	RenderRouteSheet(ctx context.Context, sheet dto.RouteSheet) ([]byte, error)
}

// RouteSheetUseCase arma la hoja de ruta imprimible de una ruta visible en el alcance.
type RouteSheetUseCase struct {
	routes    *RouteUseCase
	companies repository.CompanyRepository
	vehicles  repository.VehicleRepository
	renderer  RouteSheetRenderer
	publicURL string
	now       func() time.Time
}

// NewRouteSheetUseCase publicURL es la URL base de la consola para el QR.
func NewRouteSheetUseCase(routes *RouteUseCase, companies repository.CompanyRepository, vehicles repository.VehicleRepository, renderer RouteSheetRenderer, publicURL string) *RouteSheetUseCase {
	return &RouteSheetUseCase{
		routes:    routes,
		companies: companies,
		vehicles:  vehicles,
		renderer:  renderer,
		publicURL: publicURL,
		now:       time.Now,
	}
}

// Render devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *RouteSheetUseCase) Render(ctx context.Context, token string, scope Scope, id string) ([]byte, string, error) {
	route, err := uc.routes.Get(ctx, token, scope, id)
	if err != nil {
		return nil, "", err
	}
	sheet := dto.RouteSheet{
		Route:       *entityToRouteResponse(route),
		DetailURL:   uc.publicURL + "/dashboard/routes/" + route.ID,
		GeneratedAt: uc.now(),
	}
	// Empresa y vehículo son solo de presentación: si fallan la hoja sale sin ellos.
	if c, err := uc.companies.GetByID(ctx, token, route.CompanyID); err == nil && c != nil {
		sheet.CompanyName = c.Name
	}
	if route.VehicleID != "" {
		if v, err := uc.vehicles.GetByID(ctx, token, route.VehicleID); err == nil && v != nil {
			sheet.VehicleLabel = fmt.Sprintf("%s · %s %s (%s)", v.PlateNumber, v.Brand, v.Model, v.CompanyNumber)
			sheet.Route.VehiclePlate = v.PlateNumber
		}
	}
	doc, err := uc.renderer.RenderRouteSheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("hoja de ruta: %w", err)
	}
	return doc, "hoja-ruta-" + route.ID + ".pdf", nil
}
