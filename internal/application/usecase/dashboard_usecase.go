package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

// DashboardUseCase compone los casos de uso de recursos en las secciones del panel.
type DashboardUseCase struct {
	companies *CompanyUseCase
	users     *UserUseCase
	vehicles  *VehicleUseCase
	routes    *RouteUseCase
}

// NewDashboardUseCase construye el panel sobre los casos de uso de cada recurso.
func NewDashboardUseCase(companies *CompanyUseCase, users *UserUseCase, vehicles *VehicleUseCase, routes *RouteUseCase) *DashboardUseCase {
	return &DashboardUseCase{companies: companies, users: users, vehicles: vehicles, routes: routes}
}

// Scope consulta /users/me y resuelve el alcance del panel para el token.
func (uc *DashboardUseCase) Scope(ctx context.Context, token string) (Scope, error) {
	me, err := uc.users.Me(ctx, token)
	if err != nil {
		return Scope{}, err
	}
	return ResolveScope(me)
}

// Load lee del backend solo las listas que usa section. Cada render es una lectura fresca.
func (uc *DashboardUseCase) Load(ctx context.Context, token string, scope Scope, section string) (*dto.DashboardView, error) {
	view := &dto.DashboardView{Section: section}

	companies, err := uc.companies.List(ctx, token, scope)
	if err != nil {
		return nil, fmt.Errorf("listar empresas: %w", err)
	}
	names := companyNames(companies)
	view.Scope = scopeResponse(scope, names)

	switch section {
	case dto.SectionCompanies:
		for _, c := range companies {
			view.Companies = append(view.Companies, *entityToCompanyResponse(c))
		}
		return view, nil

	case dto.SectionUsers:
		users, err := uc.users.List(ctx, token, scope)
		if err != nil {
			return nil, fmt.Errorf("listar usuarios: %w", err)
		}
		for _, u := range users {
			r := entityToUserResponse(u)
			r.CompanyName = names[u.CompanyID]
			view.Users = append(view.Users, *r)
		}

	case dto.SectionVehicles:
		vehicles, err := uc.vehicles.List(ctx, token, scope)
		if err != nil {
			return nil, fmt.Errorf("listar vehículos: %w", err)
		}
		for _, v := range vehicles {
			r := entityToVehicleResponse(v)
			r.CompanyName = names[v.CompanyID]
			view.Vehicles = append(view.Vehicles, *r)
		}

	case dto.SectionRoutes:
		vehicles, err := uc.vehicles.List(ctx, token, scope)
		if err != nil {
			return nil, fmt.Errorf("listar vehículos: %w", err)
		}
		routes, err := uc.routes.List(ctx, token, scope)
		if err != nil {
			return nil, fmt.Errorf("listar rutas: %w", err)
		}
		plates := make(map[string]string, len(vehicles))
		for _, v := range vehicles {
			plates[v.ID] = v.PlateNumber
		}
		for _, r := range routes {
			out := entityToRouteResponse(r)
			out.CompanyName = names[r.CompanyID]
			out.VehiclePlate = plates[r.VehicleID]
			view.Routes = append(view.Routes, *out)
		}
		view.AssignableVehicles = assignableByCompany(companies, vehicles)

	default:
		return nil, fmt.Errorf("sección desconocida %q", section)
	}
	// Las secciones de recursos necesitan las empresas para selects y nombres.
	for _, c := range companies {
		view.Companies = append(view.Companies, *entityToCompanyResponse(c))
	}
	return view, nil
}

// Options datos de los selects de un formulario: empresas visibles y, si withVehicles,
// los vehículos asignables por empresa. No lee la lista de la sección.
func (uc *DashboardUseCase) Options(ctx context.Context, token string, scope Scope, withVehicles bool) (*dto.DashboardView, error) {
	companies, err := uc.companies.List(ctx, token, scope)
	if err != nil {
		return nil, fmt.Errorf("listar empresas: %w", err)
	}
	view := &dto.DashboardView{Scope: scopeResponse(scope, companyNames(companies))}
	for _, c := range companies {
		view.Companies = append(view.Companies, *entityToCompanyResponse(c))
	}
	if withVehicles {
		vehicles, err := uc.vehicles.List(ctx, token, scope)
		if err != nil {
			return nil, fmt.Errorf("listar vehículos: %w", err)
		}
		view.AssignableVehicles = assignableByCompany(companies, vehicles)
	}
	return view, nil
}

// assignableByCompany opciones del select de vehículo por empresa: misma empresa y ACTIVO.
func assignableByCompany(companies []*entity.Company, vehicles []*entity.Vehicle) map[string][]dto.VehicleResponse {
	out := make(map[string][]dto.VehicleResponse, len(companies))
	for _, c := range companies {
		for _, v := range entity.AssignableVehicles(vehicles, c.ID) {
			out[c.ID] = append(out[c.ID], *entityToVehicleResponse(v))
		}
	}
	return out
}

func scopeResponse(scope Scope, names map[string]string) dto.ScopeResponse {
	out := dto.ScopeResponse{
		Global:             scope.Global,
		CompanyID:          scope.CompanyID,
		CompanyName:        names[scope.CompanyID],
		CanManageCompanies: scope.CanManageCompanies(),
	}
	if scope.Me != nil {
		out.Me = *entityToUserResponse(scope.Me)
	}
	return out
}
