package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.AuthGateway = (*AuthClient)(nil)

// AuthClient implementa repository.AuthGateway contra los endpoints de sesión del backend.
type AuthClient struct {
	c *Client
}

// NewAuthClient construye el cliente de autenticación.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// LoginURL el backend redirige al proveedor de identidad y vuelve a la consola con ?token=.
func (a *AuthClient) LoginURL() string {
	return a.c.baseURL + "/login"
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (a *AuthClient) PasswordLogin(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	var out tokenResponse
	if err := a.c.doForm(ctx, "/login", form, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("fleetapi: %w: respuesta de login sin access_token", domain.ErrUnauthorized)
	}
	return out.AccessToken, nil
}

type logoutResponse struct {
	LogoutURL string `json:"logoutUrl"`
}

func (a *AuthClient) Logout(ctx context.Context, token string) (string, error) {
	var out logoutResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/logout", token, struct{}{}, &out); err != nil {
		return "", err
	}
	return out.LogoutURL, nil
}

// ForgotPassword el email viaja como query param.
func (a *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	path := "/forgot-password?" + url.Values{"email": {email}}.Encode()
	return a.c.doJSON(ctx, http.MethodPost, path, "", nil, nil)
}

type resetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

func (a *AuthClient) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return a.c.doJSON(ctx, http.MethodPost, "/reset-password", "", resetRequest{Email: email, Code: code, NewPassword: newPassword}, nil)
}

// Verify GET /users/ debe devolver un arreglo JSON; cualquier otra cosa es sesión no válida.
func (a *AuthClient) Verify(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}
	var out []json.RawMessage
	if err := a.c.doJSON(ctx, http.MethodGet, "/users/", token, nil, &out); err != nil {
		return err
	}
	if out == nil {
		return fmt.Errorf("fleetapi: %w: la verificación no devolvió un arreglo", domain.ErrUnauthorized)
	}
	return nil
}
