package fleetapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi/fleetapitest"
	"github.com/jhoicas/busfleet-console/pkg/config"
)

const testToken = "tok-admin"

func newBackend(t *testing.T) (*fleetapitest.Server, *fleetapi.Client) {
	t.Helper()
	srv := fleetapitest.New()
	t.Cleanup(srv.Close)
	adminID := srv.Seed("users", map[string]any{"name": "Admin", "email": "admin@flota.co", "role": "ADMIN", "status": "active"})
	srv.AddToken(testToken, adminID)
	return srv, fleetapi.New(config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
}

func lastBody(t *testing.T, srv *fleetapitest.Server, method, path string) map[string]any {
	t.Helper()
	calls := srv.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method && calls[i].Path == path {
			var body map[string]any
			require.NoError(t, json.Unmarshal([]byte(calls[i].Body), &body))
			return body
		}
	}
	t.Fatalf("no hubo llamada %s %s", method, path)
	return nil
}

func TestCompanyClient_CreateAndList(t *testing.T) {
	srv, c := newBackend(t)
	companies := fleetapi.NewCompanyClient(c)
	ctx := context.Background()

	created, err := companies.Create(ctx, testToken, &entity.Company{
		Name: "Acme", NIT: "123", Email: "a@x.com", Phone: "555", Address: "Main St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, time.Date(2026, 1, 15, 9, 30, 0, 123456000, time.UTC), created.CreatedAt)

	body := lastBody(t, srv, http.MethodPost, "/companies/")
	assert.Equal(t, "Acme", body["name"])
	assert.NotContains(t, body, "created_at")

	list, err := companies.List(ctx, testToken)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)
}

func TestClient_UnauthorizedMapsToDomainError(t *testing.T) {
	_, c := newBackend(t)

	_, err := fleetapi.NewVehicleClient(c).List(context.Background(), "token-invalido")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	var apiErr *fleetapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestClient_DetailSurfacedVerbatim(t *testing.T) {
	srv, c := newBackend(t)
	srv.Fail["POST /vehicles/"] = fleetapitest.FailResponse{Status: http.StatusBadRequest, Detail: "Ya existe un vehículo con esa placa"}

	_, err := fleetapi.NewVehicleClient(c).Create(context.Background(), testToken, &entity.Vehicle{PlateNumber: "ABC123"})

	var apiErr *fleetapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Ya existe un vehículo con esa placa", apiErr.Detail)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestVehicleClient_UpdateStatusSendsOnlyStatus(t *testing.T) {
	srv, c := newBackend(t)
	id := srv.Seed("vehicles", map[string]any{"brand": "Volvo", "status": "ACTIVO", "company_id": "c1", "vin": nil})
	vehicles := fleetapi.NewVehicleClient(c)

	v, err := vehicles.UpdateStatus(context.Background(), testToken, id, entity.VehicleMantenimiento)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleMantenimiento, v.Status)
	assert.Empty(t, v.VIN)

	assert.Equal(t, map[string]any{"status": "MANTENIMIENTO"}, lastBody(t, srv, http.MethodPut, "/vehicles/"+id+"/status"))
}

func TestVehicleClient_EmptyVINIsNull(t *testing.T) {
	srv, c := newBackend(t)

	_, err := fleetapi.NewVehicleClient(c).Create(context.Background(), testToken, &entity.Vehicle{
		Brand: "Volvo", Model: "B8R", Year: 2022, Type: entity.VehicleBus, PlateNumber: "ABC123",
		Status: entity.VehicleActivo, CompanyID: "c1",
	})
	require.NoError(t, err)

	body := lastBody(t, srv, http.MethodPost, "/vehicles/")
	assert.Contains(t, body, "vin")
	assert.Nil(t, body["vin"])
	assert.Equal(t, "BUS", body["vehicle_type"])
}

func TestRouteClient_RoundTripWireShape(t *testing.T) {
	srv, c := newBackend(t)
	routes := fleetapi.NewRouteClient(c)
	dep := time.Date(2026, 5, 4, 6, 30, 0, 0, time.UTC)

	created, err := routes.Create(context.Background(), testToken, &entity.Route{
		Name: "Bogotá - Tunja", StartPoint: "Bogotá", EndPoint: "Tunja",
		Stops:             []entity.Stop{{Location: "Chocontá", StopMinutes: 15}},
		Departure:         dep,
		EstimatedDuration: 180,
		Repetition:        &entity.Repetition{Frequency: 1, Period: entity.RepeatDaily},
		Status:            entity.RouteActiva,
		CompanyID:         "c1",
	})
	require.NoError(t, err)

	body := lastBody(t, srv, http.MethodPost, "/routes/")
	assert.Equal(t, "2026-05-04T06:30:00", body["departure_time"])
	assert.Nil(t, body["vehicle_id"])
	assert.Equal(t, "DIARIO", body["repetition_period"])
	stops := body["intermediate_stops"].([]any)
	assert.Equal(t, map[string]any{"location": "Chocontá", "estimated_stop_time": float64(15)}, stops[0])

	assert.Equal(t, dep, created.Departure)
	require.NotNil(t, created.Repetition)
	assert.Equal(t, entity.RepeatDaily, created.Repetition.Period)
	assert.Equal(t, []entity.Stop{{Location: "Chocontá", StopMinutes: 15}}, created.Stops)
}

func TestRouteClient_ListByCompany(t *testing.T) {
	srv, c := newBackend(t)
	srv.Seed("routes", map[string]any{"name": "R1", "company_id": "c1", "departure_time": "2026-05-04T06:30"})
	srv.Seed("routes", map[string]any{"name": "R2", "company_id": "c2", "departure_time": "2026-05-04T06:30:00"})

	list, err := fleetapi.NewRouteClient(c).ListByCompany(context.Background(), testToken, "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "R1", list[0].Name)
	assert.Nil(t, list[0].Repetition)
}

func TestUserClient_UpdateProfileWarning(t *testing.T) {
	_, c := newBackend(t)
	users := fleetapi.NewUserClient(c)
	ctx := context.Background()

	me, err := users.Me(ctx, testToken)
	require.NoError(t, err)

	me.Name = "Admin Flota"
	res, err := users.UpdateProfile(ctx, testToken, me)
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.Equal(t, "Admin Flota", res.User.Name)

	me.Email = "nuevo@flota.co"
	res, err = users.UpdateProfile(ctx, testToken, me)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warning)
	assert.Equal(t, "nuevo@flota.co", res.User.Email)
}

func TestAuthClient_Verify(t *testing.T) {
	srv, c := newBackend(t)
	auth := fleetapi.NewAuthClient(c)
	ctx := context.Background()

	require.NoError(t, auth.Verify(ctx, testToken))
	assert.ErrorIs(t, auth.Verify(ctx, "otro"), domain.ErrUnauthorized)
	assert.ErrorIs(t, auth.Verify(ctx, ""), domain.ErrUnauthorized)

	srv.Fail["GET /users/"] = fleetapitest.FailResponse{Status: http.StatusInternalServerError, Detail: "boom"}
	assert.ErrorIs(t, auth.Verify(ctx, testToken), domain.ErrBackendUnavailable)
}

func TestAuthClient_PasswordFlows(t *testing.T) {
	srv, c := newBackend(t)
	auth := fleetapi.NewAuthClient(c)
	ctx := context.Background()
	srv.SetPassword("admin@flota.co", "secreta")

	token, err := auth.PasswordLogin(ctx, "admin@flota.co", "secreta")
	require.NoError(t, err)
	require.NoError(t, auth.Verify(ctx, token))

	_, err = auth.PasswordLogin(ctx, "admin@flota.co", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, auth.ForgotPassword(ctx, "admin@flota.co"))
	calls := srv.Calls()
	last := calls[len(calls)-1]
	assert.Equal(t, "/forgot-password", last.Path)
	assert.Equal(t, "email=admin%40flota.co", last.Query)

	err = auth.ResetPassword(ctx, "admin@flota.co", "000000", "nueva")
	var apiErr *fleetapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Código de verificación inválido", apiErr.Detail)

	srv.LogoutURL = "https://idp.example/logout"
	url, err := auth.Logout(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example/logout", url)
}
