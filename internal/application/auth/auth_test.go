package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/busfleet-console/internal/application/auth"
	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/fleetapi/fleetapitest"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/memory"
	"github.com/jhoicas/busfleet-console/pkg/config"
	pkgjwt "github.com/jhoicas/busfleet-console/pkg/jwt"
)

type fixture struct {
	srv      *fleetapitest.Server
	sessions *memory.SessionStore
	uc       *auth.AuthUseCase
	gate     *auth.Gate
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := fleetapitest.New()
	t.Cleanup(srv.Close)
	adminID := srv.Seed("users", map[string]any{"name": "Admin", "email": "admin@flota.co", "role": "ADMIN", "status": "active"})
	srv.SetPassword("admin@flota.co", "secreto123")
	srv.AddToken("tok-valid", adminID)

	f := &fixture{srv: srv, now: time.Now().UTC()}
	client := fleetapi.NewAuthClient(fleetapi.New(config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil))
	f.sessions = memory.NewSessionStore(time.Hour)
	f.uc = auth.NewAuthUseCase(client, f.sessions, nil)
	f.gate = auth.NewGate(client, f.sessions, time.Minute, nil).WithClock(func() time.Time { return f.now })
	return f
}

func TestAcceptToken_StartsVerifying(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)
	assert.Equal(t, entity.GateVerifying, sess.State)
	assert.True(t, sess.TokenExpiresAt.IsZero(), "token opaco sin exp")

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tok-valid", stored.Token)
}

func TestAcceptToken_Empty(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AcceptToken(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAcceptToken_ReadsJWTExpiry(t *testing.T) {
	f := newFixture(t)
	tok, err := pkgjwt.Generate("s3cr3t", "admin", "admin@flota.co", 10*time.Minute)
	require.NoError(t, err)

	sess, err := f.uc.AcceptToken(context.Background(), tok)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), sess.TokenExpiresAt, 2*time.Second)
}

func TestGate_CheckVerifiesAndSchedules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)

	checked, err := f.gate.Check(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GateVerified, checked.State)
	assert.Equal(t, f.now.Add(time.Minute), checked.NextCheckAt)
	assert.Equal(t, 1, f.srv.CountCalls(http.MethodGet, "/users/"))
}

func TestGate_UnauthorizedClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.uc.AcceptToken(ctx, "tok-revocado")
	require.NoError(t, err)

	_, err = f.gate.Check(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, stored, "la sesión se borra al fallar la verificación")
}

func TestGate_NetworkFailureClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)
	f.srv.Fail["GET /users/"] = fleetapitest.FailResponse{Status: http.StatusBadGateway, Detail: "caído"}

	_, err = f.gate.Check(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	stored, _ := f.sessions.Get(ctx, sess.ID)
	assert.Nil(t, stored)
}

func TestGate_ExpiredTokenSkipsNetwork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tok, err := pkgjwt.Generate("s3cr3t", "admin", "", -time.Minute)
	require.NoError(t, err)
	sess, err := f.uc.AcceptToken(ctx, tok)
	require.NoError(t, err)

	_, err = f.gate.Check(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, f.srv.CountCalls(http.MethodGet, "/users/"))
}

func TestGate_MissingSession(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"", "no-es-uuid", "3f1c9c1e-2b1a-4c55-9a8e-000000000000"} {
		_, err := f.gate.Check(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, id)
	}
	assert.Empty(t, f.srv.Calls(), "sin sesión no se consulta al backend")
}

func TestGate_PollOnlyCallsBackendWhenDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)
	_, err = f.gate.Check(ctx, sess.ID)
	require.NoError(t, err)
	f.srv.ResetCalls()

	f.now = f.now.Add(30 * time.Second)
	_, err = f.gate.Poll(ctx, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, f.srv.CountCalls(http.MethodGet, "/users/"))

	f.now = f.now.Add(31 * time.Second)
	_, err = f.gate.Poll(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.srv.CountCalls(http.MethodGet, "/users/"))
}

func TestGate_SweepEvictsRevokedTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	good, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)
	bad, err := f.uc.AcceptToken(ctx, "tok-valid-2")
	require.NoError(t, err)
	f.srv.AddToken("tok-valid-2", "user-0001")
	_, err = f.gate.Check(ctx, good.ID)
	require.NoError(t, err)
	_, err = f.gate.Check(ctx, bad.ID)
	require.NoError(t, err)

	f.srv.RevokeToken("tok-valid-2")
	f.now = f.now.Add(2 * time.Minute)

	evicted, err := f.gate.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, evicted)

	stored, _ := f.sessions.Get(ctx, bad.ID)
	assert.Nil(t, stored)
	stored, _ = f.sessions.Get(ctx, good.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.GateVerified, stored.State)
}

func TestGate_SweepSkipsSessionsNotDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)
	_, err = f.gate.Check(ctx, sess.ID)
	require.NoError(t, err)
	f.srv.ResetCalls()

	evicted, err := f.gate.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, evicted)
	assert.Zero(t, f.srv.CountCalls(http.MethodGet, "/users/"))
}

func TestPasswordLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.uc.PasswordLogin(ctx, dto.LoginForm{Username: "admin@flota.co", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	_, err = f.uc.PasswordLogin(ctx, dto.LoginForm{Username: "admin@flota.co", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.PasswordLogin(ctx, dto.LoginForm{Username: "", Password: ""})
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
}

func TestLogout_UsesProviderURLAndClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.srv.LogoutURL = "https://idp.example/logout"
	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)

	res := f.uc.Logout(ctx, sess.ID)
	assert.Equal(t, "https://idp.example/logout", res.RedirectURL)
	stored, _ := f.sessions.Get(ctx, sess.ID)
	assert.Nil(t, stored)
}

func TestLogout_BackendErrorFallsBackToRoot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess, err := f.uc.AcceptToken(ctx, "tok-valid")
	require.NoError(t, err)
	f.srv.Fail["POST /logout"] = fleetapitest.FailResponse{Status: http.StatusInternalServerError, Detail: "boom"}

	res := f.uc.Logout(ctx, sess.ID)
	assert.Equal(t, "/", res.RedirectURL)
	stored, _ := f.sessions.Get(ctx, sess.ID)
	assert.Nil(t, stored)
}

func TestResetPassword_WrongCodeSurfacesDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.ForgotPassword(ctx, dto.ForgotPasswordForm{Email: "admin@flota.co"}))

	err := f.uc.ResetPassword(ctx, dto.ResetPasswordForm{
		Email: "admin@flota.co", Code: "000000", NewPassword: "nuevaClave1", ConfirmPassword: "nuevaClave1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Código de verificación inválido")

	require.NoError(t, f.uc.ResetPassword(ctx, dto.ResetPasswordForm{
		Email: "admin@flota.co", Code: "123456", NewPassword: "nuevaClave1", ConfirmPassword: "nuevaClave1",
	}))
}

func TestResetPassword_MismatchNeverReachesBackend(t *testing.T) {
	f := newFixture(t)
	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordForm{
		Email: "admin@flota.co", Code: "123456", NewPassword: "nuevaClave1", ConfirmPassword: "otraClave1",
	})
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "confirm_password")
	assert.Zero(t, f.srv.CountCalls(http.MethodPost, "/reset-password"))
}
