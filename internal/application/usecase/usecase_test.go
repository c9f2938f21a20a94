package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
)

const tok = "tok"

var (
	ctx         = context.Background()
	adminUser   = &entity.User{ID: "admin", Email: "admin@flota.co", Role: entity.RoleAdmin}
	staffUser   = &entity.User{ID: "staff", Email: "staff@acme.co", Role: entity.RoleAdministrativo, CompanyID: "c1"}
	globalScope = usecase.Scope{Global: true, Me: adminUser}
	acmeScope   = usecase.Scope{CompanyID: "c1", Me: staffUser}
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *usecase.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, fue %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return verr.Fields
}

func TestResolveScope(t *testing.T) {
	s, err := usecase.ResolveScope(adminUser)
	require.NoError(t, err)
	assert.True(t, s.Global)

	s, err = usecase.ResolveScope(staffUser)
	require.NoError(t, err)
	assert.False(t, s.Global)
	assert.Equal(t, "c1", s.CompanyID)
	assert.True(t, s.Allows("c1"))
	assert.False(t, s.Allows("c2"))

	_, err = usecase.ResolveScope(&entity.User{Role: entity.RoleConductor, CompanyID: "c1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = usecase.ResolveScope(&entity.User{Role: entity.RoleAdministrativo})
	assert.ErrorIs(t, err, domain.ErrForbidden, "administrativo sin empresa")
}

func TestCompanyUseCase_Create(t *testing.T) {
	repo := newStubCompanies()
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create(ctx, tok, globalScope, dto.CompanyForm{Name: "Acme", NIT: "123", Email: "a@x.com", Phone: "555", Address: "Main St"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	assert.Equal(t, entity.CompanyStatusActive, out.Status)
	assert.Equal(t, 1, repo.writes)
}

func TestCompanyUseCase_ValidationStopsBeforeBackend(t *testing.T) {
	repo := newStubCompanies()
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.Create(ctx, tok, globalScope, dto.CompanyForm{Name: "Acme", Email: "no-es-correo"})

	fields := validationFields(t, err)
	assert.Contains(t, fields, "nit")
	assert.Contains(t, fields, "email")
	assert.Zero(t, repo.writes)
}

func TestCompanyUseCase_CompanyScopeCannotMutate(t *testing.T) {
	repo := newStubCompanies(&entity.Company{ID: "c1", Name: "Acme"})
	uc := usecase.NewCompanyUseCase(repo)
	form := dto.CompanyForm{Name: "X", NIT: "1", Email: "x@x.co"}

	_, err := uc.Create(ctx, tok, acmeScope, form)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Update(ctx, tok, acmeScope, "c1", form)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, tok, acmeScope, "c1", true), domain.ErrForbidden)
	assert.Zero(t, repo.writes)

	list, err := uc.List(ctx, tok, acmeScope)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)
}

func TestCompanyUseCase_DeleteRequiresConfirmation(t *testing.T) {
	repo := newStubCompanies(&entity.Company{ID: "c1"})
	uc := usecase.NewCompanyUseCase(repo)

	assert.ErrorIs(t, uc.Delete(ctx, tok, globalScope, "c1", false), domain.ErrConfirmationRequired)
	assert.Zero(t, repo.writes)

	require.NoError(t, uc.Delete(ctx, tok, globalScope, "c1", true))
	assert.Equal(t, 1, repo.writes)
}

func TestUserUseCase_CompanyScope(t *testing.T) {
	repo := newStubUsers(staffUser,
		staffUser,
		&entity.User{ID: "u-admin", Role: entity.RoleAdmin, CompanyID: "c1"},
		&entity.User{ID: "u-driver", Role: entity.RoleConductor, CompanyID: "c1"},
		&entity.User{ID: "u-other", Role: entity.RoleConductor, CompanyID: "c2"},
	)
	uc := usecase.NewUserUseCase(repo)

	list, err := uc.List(ctx, tok, acmeScope)
	require.NoError(t, err)
	require.Len(t, list, 1, "se ocultan ADMIN, ADMINISTRATIVO y otras empresas")
	assert.Equal(t, "u-driver", list[0].ID)

	created, err := uc.Create(ctx, tok, acmeScope, dto.UserForm{Name: "Ana", Email: "ana@acme.co", Role: "TECNICO", CompanyID: "c2"})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.CompanyID, "company_id forzado")

	_, err = uc.Create(ctx, tok, acmeScope, dto.UserForm{Name: "Eva", Email: "eva@acme.co", Role: "ADMINISTRATIVO", CompanyID: "c1"})
	assert.Contains(t, validationFields(t, err), "role")

	_, err = uc.GetByID(ctx, tok, acmeScope, "u-other")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, tok, acmeScope, "u-admin", true), domain.ErrForbidden)
}

func TestUserUseCase_UpdateProfileEmailChange(t *testing.T) {
	me := &entity.User{ID: "admin", Name: "Admin", Email: "admin@flota.co", Role: entity.RoleAdmin, Status: "active"}
	repo := newStubUsers(me, me)
	repo.warning = "Su correo electrónico ha sido actualizado."
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.UpdateProfile(ctx, tok, me, dto.ProfileForm{Name: "Admin", Email: "nuevo@flota.co"})
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Zero(t, repo.writes)

	res, err := uc.UpdateProfile(ctx, tok, me, dto.ProfileForm{Name: "Admin", Email: "nuevo@flota.co", ConfirmEmailChange: true})
	require.NoError(t, err)
	assert.True(t, res.ForceLogout)
	assert.Equal(t, "ADMIN", res.User.Role, "el rol no cambia por perfil")

	res, err = uc.UpdateProfile(ctx, tok, me, dto.ProfileForm{Name: "Otro nombre", Email: "ADMIN@flota.co"})
	require.NoError(t, err)
	assert.False(t, res.ForceLogout)
}

func TestVehicleUseCase(t *testing.T) {
	repo := newStubVehicles(
		&entity.Vehicle{ID: "v1", CompanyID: "c1", Status: entity.VehicleActivo},
		&entity.Vehicle{ID: "v2", CompanyID: "c2", Status: entity.VehicleActivo},
	)
	uc := usecase.NewVehicleUseCase(repo)

	out, err := uc.UpdateStatus(ctx, tok, acmeScope, "v1", dto.StatusForm{Status: "AVERIADO"})
	require.NoError(t, err)
	assert.Equal(t, "AVERIADO", out.Status)
	assert.Equal(t, entity.VehicleAveriado, repo.status)

	_, err = uc.UpdateStatus(ctx, tok, acmeScope, "v1", dto.StatusForm{Status: "VOLANDO"})
	assert.Contains(t, validationFields(t, err), "status")

	_, err = uc.UpdateStatus(ctx, tok, acmeScope, "v2", dto.StatusForm{Status: "BAJA"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	created, err := uc.Create(ctx, tok, acmeScope, dto.VehicleForm{
		Brand: "Volvo", Model: "B8R", Year: 2022, VehicleType: "BUS", PlateNumber: "abc123",
		CompanyNumber: "12", Status: "ACTIVO", CompanyID: "c2",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.CompanyID)
	assert.Equal(t, "ABC123", created.PlateNumber)
}

func routeForm() dto.RouteForm {
	return dto.RouteForm{
		Name: "Bogotá - Tunja", StartPoint: "Bogotá", EndPoint: "Tunja",
		StopLocations: []string{"Chocontá", "", "Villapinzón"},
		StopMinutes:   []int{10, 0, 5},
		DepartureDate: "2026-05-04", DepartureTime: "06:30",
		DurationDays: 0, DurationHours: 2, DurationMinutes: 45,
		Status: "ACTIVA", CompanyID: "c1",
	}
}

func TestRouteUseCase_CreateBuildsRoute(t *testing.T) {
	routes := newStubRoutes()
	uc := usecase.NewRouteUseCase(routes, newStubVehicles())

	in := routeForm()
	in.RepetitionFrequency = 1
	in.RepetitionPeriod = "SEMANAL"
	out, err := uc.Create(ctx, tok, globalScope, in)
	require.NoError(t, err)

	r := routes.last
	assert.Equal(t, 165, r.EstimatedDuration)
	assert.Equal(t, time.Date(2026, 5, 4, 6, 30, 0, 0, time.UTC), r.Departure)
	assert.Equal(t, []entity.Stop{{Location: "Chocontá", StopMinutes: 10}, {Location: "Villapinzón", StopMinutes: 5}}, r.Stops)
	require.NotNil(t, r.Repetition)
	assert.Equal(t, entity.RepeatWeekly, r.Repetition.Period)
	assert.Equal(t, "2h 45m", out.DurationText)
	assert.Equal(t, "06:30", out.DepartureTime)
}

func TestRouteUseCase_Validation(t *testing.T) {
	routes := newStubRoutes()
	uc := usecase.NewRouteUseCase(routes, newStubVehicles())

	in := routeForm()
	in.RepetitionPeriod = "DIARIO"
	_, err := uc.Create(ctx, tok, globalScope, in)
	assert.Contains(t, validationFields(t, err), "repetition_frequency")

	in = routeForm()
	in.StopLocations = []string{""}
	in.StopMinutes = []int{15}
	_, err = uc.Create(ctx, tok, globalScope, in)
	assert.Contains(t, validationFields(t, err), "stop_location")

	in = routeForm()
	in.DurationHours = -1
	_, err = uc.Create(ctx, tok, globalScope, in)
	assert.Contains(t, validationFields(t, err), "duration_hours")

	in = routeForm()
	in.DepartureTime = "25:99"
	_, err = uc.Create(ctx, tok, globalScope, in)
	assert.Contains(t, validationFields(t, err), "departure_time")

	assert.Zero(t, routes.writes)
}

func TestRouteUseCase_VehicleMustBeAssignable(t *testing.T) {
	vehicles := newStubVehicles(
		&entity.Vehicle{ID: "v-ok", CompanyID: "c1", Status: entity.VehicleActivo},
		&entity.Vehicle{ID: "v-taller", CompanyID: "c1", Status: entity.VehicleMantenimiento},
		&entity.Vehicle{ID: "v-otra", CompanyID: "c2", Status: entity.VehicleActivo},
	)
	routes := newStubRoutes(&entity.Route{ID: "r1", CompanyID: "c1", VehicleID: "v-taller", Status: entity.RouteActiva})
	uc := usecase.NewRouteUseCase(routes, vehicles)

	for _, id := range []string{"v-taller", "v-otra", "v-inexistente"} {
		in := routeForm()
		in.VehicleID = id
		_, err := uc.Create(ctx, tok, globalScope, in)
		assert.ErrorIs(t, err, domain.ErrVehicleNotSelectable, id)
	}

	in := routeForm()
	in.VehicleID = "v-ok"
	_, err := uc.Create(ctx, tok, globalScope, in)
	require.NoError(t, err)

	in = routeForm()
	in.VehicleID = "v-taller"
	_, err = uc.Update(ctx, tok, globalScope, "r1", in)
	require.NoError(t, err, "conservar el vehículo ya asignado")
}

func TestDashboardUseCase_RoutesSection(t *testing.T) {
	companies := newStubCompanies(&entity.Company{ID: "c1", Name: "Acme"}, &entity.Company{ID: "c2", Name: "Beta"})
	users := newStubUsers(staffUser, staffUser)
	vehicles := newStubVehicles(
		&entity.Vehicle{ID: "v1", CompanyID: "c1", Status: entity.VehicleActivo, PlateNumber: "AAA111"},
		&entity.Vehicle{ID: "v2", CompanyID: "c1", Status: entity.VehicleBaja, PlateNumber: "BBB222"},
		&entity.Vehicle{ID: "v3", CompanyID: "c2", Status: entity.VehicleActivo, PlateNumber: "CCC333"},
	)
	routes := newStubRoutes(&entity.Route{ID: "r1", CompanyID: "c1", VehicleID: "v2", EstimatedDuration: 90})
	uc := usecase.NewDashboardUseCase(
		usecase.NewCompanyUseCase(companies),
		usecase.NewUserUseCase(users),
		usecase.NewVehicleUseCase(vehicles),
		usecase.NewRouteUseCase(routes, vehicles),
	)

	scope, err := uc.Scope(ctx, tok)
	require.NoError(t, err)

	view, err := uc.Load(ctx, tok, scope, dto.SectionRoutes)
	require.NoError(t, err)
	assert.Equal(t, "Acme", view.Scope.CompanyName)
	assert.False(t, view.Scope.CanManageCompanies)
	require.Len(t, view.Routes, 1)
	assert.Equal(t, "BBB222", view.Routes[0].VehiclePlate)
	assert.Equal(t, "1h 30m", view.Routes[0].DurationText)
	require.Len(t, view.AssignableVehicles["c1"], 1)
	assert.Equal(t, "v1", view.AssignableVehicles["c1"][0].ID)
	assert.NotContains(t, view.AssignableVehicles, "c2", "alcance de empresa")

	_, err = uc.Load(ctx, tok, scope, "reportes")
	assert.Error(t, err)
}

type captureRenderer struct {
	sheet dto.RouteSheet
}

func (r *captureRenderer) RenderRouteSheet(_ context.Context, sheet dto.RouteSheet) ([]byte, error) {
	r.sheet = sheet
	return []byte("%PDF-1.3"), nil
}

func TestRouteSheetUseCase_Render(t *testing.T) {
	companies := newStubCompanies(&entity.Company{ID: "c1", Name: "Acme"})
	vehicles := newStubVehicles(&entity.Vehicle{ID: "v1", CompanyID: "c1", PlateNumber: "AAA111", Brand: "Volvo", Model: "B8R", CompanyNumber: "07"})
	routes := newStubRoutes(
		&entity.Route{ID: "r1", Name: "Norte", CompanyID: "c1", VehicleID: "v1", EstimatedDuration: 75},
		&entity.Route{ID: "r2", Name: "Sur", CompanyID: "c2"},
	)
	renderer := &captureRenderer{}
	uc := usecase.NewRouteSheetUseCase(usecase.NewRouteUseCase(routes, vehicles), companies, vehicles, renderer, "https://consola.flota.co")

	doc, name, err := uc.Render(ctx, tok, acmeScope, "r1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(doc))
	assert.Equal(t, "hoja-ruta-r1.pdf", name)
	assert.Equal(t, "Acme", renderer.sheet.CompanyName)
	assert.Equal(t, "AAA111", renderer.sheet.Route.VehiclePlate)
	assert.Equal(t, "https://consola.flota.co/dashboard/routes/r1", renderer.sheet.DetailURL)
	assert.Equal(t, "1h 15m", renderer.sheet.Route.DurationText)

	_, _, err = uc.Render(ctx, tok, acmeScope, "r2")
	assert.ErrorIs(t, err, domain.ErrForbidden, "ruta de otra empresa")
}
