package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

// RouteUseCase aplica las reglas del panel para rutas.
type RouteUseCase struct {
	repo     repository.RouteRepository
	vehicles repository.VehicleRepository
}

// NewRouteUseCase construye el caso de uso. vehicles se usa para validar el vehículo asignado.
func NewRouteUseCase(repo repository.RouteRepository, vehicles repository.VehicleRepository) *RouteUseCase {
	return &RouteUseCase{repo: repo, vehicles: vehicles}
}

// List rutas del alcance.
func (uc *RouteUseCase) List(ctx context.Context, token string, scope Scope) ([]*entity.Route, error) {
	if scope.Global {
		return uc.repo.List(ctx, token)
	}
	return uc.repo.ListByCompany(ctx, token, scope.CompanyID)
}

// Get ruta del alcance como entidad (hoja de ruta PDF).
func (uc *RouteUseCase) Get(ctx context.Context, token string, scope Scope, id string) (*entity.Route, error) {
	r, err := uc.repo.GetByID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(r.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

// GetByID ruta del alcance para presentación.
func (uc *RouteUseCase) GetByID(ctx context.Context, token string, scope Scope, id string) (*dto.RouteResponse, error) {
	r, err := uc.Get(ctx, token, scope, id)
	if err != nil {
		return nil, err
	}
	return entityToRouteResponse(r), nil
}

// Create programa una ruta. El vehículo, si se indica, debe ser de la misma empresa y estar ACTIVO.
func (uc *RouteUseCase) Create(ctx context.Context, token string, scope Scope, in dto.RouteForm) (*dto.RouteResponse, error) {
	route, err := uc.buildRoute(scope, in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkVehicle(ctx, token, route, ""); err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, token, route)
	if err != nil {
		return nil, err
	}
	return entityToRouteResponse(created), nil
}

// Update reemplaza la ruta id. Conservar el vehículo ya asignado no exige que siga ACTIVO.
func (uc *RouteUseCase) Update(ctx context.Context, token string, scope Scope, id string, in dto.RouteForm) (*dto.RouteResponse, error) {
	route, err := uc.buildRoute(scope, in)
	if err != nil {
		return nil, err
	}
	current, err := uc.Get(ctx, token, scope, id)
	if err != nil {
		return nil, err
	}
	keep := ""
	if current.CompanyID == route.CompanyID {
		keep = current.VehicleID
	}
	if err := uc.checkVehicle(ctx, token, route, keep); err != nil {
		return nil, err
	}
	route.ID = id
	updated, err := uc.repo.Update(ctx, token, route)
	if err != nil {
		return nil, err
	}
	return entityToRouteResponse(updated), nil
}

// UpdateStatus cambia solo el estado (selector en línea).
func (uc *RouteUseCase) UpdateStatus(ctx context.Context, token string, scope Scope, id string, in dto.StatusForm) (*dto.RouteResponse, error) {
	status := entity.RouteStatus(in.Status)
	if !status.Valid() {
		return nil, fieldError("status", "Valor no permitido")
	}
	if _, err := uc.Get(ctx, token, scope, id); err != nil {
		return nil, err
	}
	updated, err := uc.repo.UpdateStatus(ctx, token, id, status)
	if err != nil {
		return nil, err
	}
	return entityToRouteResponse(updated), nil
}

// Delete elimina la ruta id tras confirmación explícita.
func (uc *RouteUseCase) Delete(ctx context.Context, token string, scope Scope, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if _, err := uc.Get(ctx, token, scope, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, token, id)
}

// buildRoute valida el formulario y arma la entidad: salida fecha+hora, duración d/h/m, paradas alineadas por índice.
func (uc *RouteUseCase) buildRoute(scope Scope, in dto.RouteForm) (*entity.Route, error) {
	in.CompanyID = scope.forceCompany(in.CompanyID)
	if err := validateForm(in); err != nil {
		return nil, err
	}
	departure, err := time.ParseInLocation(dateLayout+" "+timeLayout, in.DepartureDate+" "+in.DepartureTime, time.UTC)
	if err != nil {
		return nil, fieldError("departure_date", "Fecha u hora inválida")
	}
	stops, err := formStops(in.StopLocations, in.StopMinutes)
	if err != nil {
		return nil, err
	}
	duration := entity.Duration{Days: in.DurationDays, Hours: in.DurationHours, Minutes: in.DurationMinutes}
	route := &entity.Route{
		Name:              strings.TrimSpace(in.Name),
		StartPoint:        strings.TrimSpace(in.StartPoint),
		EndPoint:          strings.TrimSpace(in.EndPoint),
		Stops:             stops,
		Departure:         departure,
		EstimatedDuration: duration.Total(),
		Status:            entity.RouteStatus(in.Status),
		CompanyID:         in.CompanyID,
		VehicleID:         strings.TrimSpace(in.VehicleID),
	}
	if in.RepetitionPeriod != "" {
		if in.RepetitionFrequency <= 0 {
			return nil, fieldError("repetition_frequency", "Indique cada cuántos periodos se repite")
		}
		route.Repetition = &entity.Repetition{Frequency: in.RepetitionFrequency, Period: entity.RepetitionPeriod(in.RepetitionPeriod)}
	}
	return route, nil
}

// formStops descarta filas totalmente vacías; una fila con minutos y sin lugar es un error.
func formStops(locations []string, minutes []int) ([]entity.Stop, error) {
	stops := make([]entity.Stop, 0, len(locations))
	n := max(len(locations), len(minutes))
	for i := 0; i < n; i++ {
		loc := ""
		if i < len(locations) {
			loc = strings.TrimSpace(locations[i])
		}
		mins := 0
		if i < len(minutes) {
			mins = minutes[i]
		}
		if loc == "" {
			if mins != 0 {
				return nil, fieldError("stop_location", "Cada parada necesita un lugar")
			}
			continue
		}
		stops = append(stops, entity.Stop{Location: loc, StopMinutes: mins})
	}
	return stops, nil
}

// checkVehicle verifica que el vehículo seleccionado sea asignable. keep es un vehículo ya asignado que se acepta tal cual.
func (uc *RouteUseCase) checkVehicle(ctx context.Context, token string, route *entity.Route, keep string) error {
	if route.VehicleID == "" || route.VehicleID == keep {
		return nil
	}
	v, err := uc.vehicles.GetByID(ctx, token, route.VehicleID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if err != nil || !v.AssignableTo(route.CompanyID) {
		return &ValidationError{
			Fields: map[string]string{"vehicle_id": "El vehículo no pertenece a la empresa o no está activo"},
			Cause:  domain.ErrVehicleNotSelectable,
		}
	}
	return nil
}
