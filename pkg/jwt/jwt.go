package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims campos que la consola lee del access token emitido por el proveedor de identidad.
// La firma la valida el backend; la consola solo usa exp para planificar la re-verificación.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// Generate genera un token HS256 con subject, email y expiración relativa.
// Solo lo usan los tests para emitir tokens con exp.
func Generate(secret, subject, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Inspect decodifica los claims sin verificar la firma.
// Devuelve error si el token no es un JWT bien formado (p. ej. un token opaco).
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token no decodificable: %w", err)
	}
	return claims, nil
}

// ExpiresAt devuelve el claim exp si el token es un JWT que lo incluye.
func ExpiresAt(tokenString string) (time.Time, bool) {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
