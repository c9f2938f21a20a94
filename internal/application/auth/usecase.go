package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/busfleet-console/internal/application/dto"
	"github.com/jhoicas/busfleet-console/internal/application/usecase"
	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
	"github.com/jhoicas/busfleet-console/pkg/jwt"
	"github.com/jhoicas/busfleet-console/pkg/logger"
)

// AuthUseCase casos de uso de sesión: recepción de token, login directo, logout y restablecimiento de contraseña.
type AuthUseCase struct {
	gateway  repository.AuthGateway
	sessions repository.SessionRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, sessions repository.SessionRepository, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{gateway: gateway, sessions: sessions, log: log.Named("auth"), now: time.Now}
}

// LoginURL inicio de sesión alojado por el proveedor de identidad.
func (uc *AuthUseCase) LoginURL() string {
	return uc.gateway.LoginURL()
}

// AcceptToken persiste el token recibido en una nueva sesión en estado verifying.
// La verificación ocurre en la primera navegación protegida.
func (uc *AuthUseCase) AcceptToken(ctx context.Context, token string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("token vacío: %w", domain.ErrInvalidInput)
	}
	now := uc.now().UTC()
	sess := &entity.Session{
		ID:        uuid.NewString(),
		Token:     token,
		State:     entity.GateVerifying,
		CreatedAt: now,
	}
	if exp, ok := jwt.ExpiresAt(token); ok {
		sess.TokenExpiresAt = exp.UTC()
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	return sess, nil
}

// PasswordLogin intercambia usuario y contraseña por un token y abre la sesión.
func (uc *AuthUseCase) PasswordLogin(ctx context.Context, in dto.LoginForm) (*entity.Session, error) {
	if err := usecase.Validate(in); err != nil {
		return nil, err
	}
	token, err := uc.gateway.PasswordLogin(ctx, strings.TrimSpace(in.Username), in.Password)
	if err != nil {
		return nil, err
	}
	return uc.AcceptToken(ctx, token)
}

// Logout cierra la sesión en el backend y borra la sesión local siempre.
// Ante cualquier error el destino es "/".
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) dto.LogoutResult {
	result := dto.LogoutResult{RedirectURL: "/"}
	if sessionID == "" {
		return result
	}
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("leer sesión para logout")
	}
	if sess != nil && sess.Token != "" {
		logoutURL, err := uc.gateway.Logout(ctx, sess.Token)
		switch {
		case err != nil:
			uc.log.Warn().Err(err).Msg("logout en backend falló; se limpia solo la sesión local")
		case logoutURL != "":
			result.RedirectURL = logoutURL
		}
	}
	uc.ClearSession(ctx, sessionID)
	return result
}

// ClearSession borra la sesión local sin llamar al backend.
func (uc *AuthUseCase) ClearSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.log.Warn().Err(err).Str("session", sessionID).Msg("borrar sesión")
	}
}

// ForgotPassword paso 1: solicita el código de verificación por correo.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordForm) error {
	if err := usecase.Validate(in); err != nil {
		return err
	}
	return uc.gateway.ForgotPassword(ctx, strings.TrimSpace(in.Email))
}

// ResetPassword paso 2: confirma el código y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordForm) error {
	if err := usecase.Validate(in); err != nil {
		return err
	}
	return uc.gateway.ResetPassword(ctx, strings.TrimSpace(in.Email), strings.TrimSpace(in.Code), in.NewPassword)
}
