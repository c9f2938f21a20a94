package repository

import "context"

// AuthGateway puerto hacia los endpoints de autenticación del backend y del proveedor de identidad.
type AuthGateway interface {
	// LoginURL URL del inicio de sesión alojado (redirección externa).
	LoginURL() string
	// PasswordLogin intercambia credenciales por un access token.
	PasswordLogin(ctx context.Context, username, password string) (string, error)
	// Logout cierra la sesión en el backend; devuelve la URL de logout externa si la hay.
	Logout(ctx context.Context, token string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	// Verify petición autenticada ligera: error si el backend no acepta el token.
	Verify(ctx context.Context, token string) error
}
