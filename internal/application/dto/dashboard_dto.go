package dto

// Secciones del panel.
const (
	SectionCompanies = "companies"
	SectionUsers     = "users"
	SectionVehicles  = "vehicles"
	SectionRoutes    = "routes"
)

// ScopeResponse alcance con el que se renderiza el panel.
type ScopeResponse struct {
	Global             bool
	CompanyID          string
	CompanyName        string
	CanManageCompanies bool
	Me                 UserResponse
}

// DashboardView datos de una sección del panel. Solo se llenan las listas que la sección usa.
type DashboardView struct {
	Section   string
	Scope     ScopeResponse
	Companies []CompanyResponse
	Users     []UserResponse
	Vehicles  []VehicleResponse
	Routes    []RouteResponse
	// AssignableVehicles vehículos ACTIVO agrupados por empresa para el select de rutas.
	AssignableVehicles map[string][]VehicleResponse
}
