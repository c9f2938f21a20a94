package entity

import "time"

// GateState estado del Auth Gate para una sesión: verifying → {verified, unverified}.
type GateState string

const (
	GateVerifying  GateState = "verifying"
	GateVerified   GateState = "verified"
	GateUnverified GateState = "unverified"
)

// Session sesión de navegador: el único estado durable que la consola guarda es el bearer token.
type Session struct {
	ID             string
	Token          string
	State          GateState
	CreatedAt      time.Time
	LastVerifiedAt time.Time // cero = nunca verificada
	NextCheckAt    time.Time
	TokenExpiresAt time.Time // cero = token opaco o sin exp
}

// TokenExpired informa si el token tiene exp y ya pasó en now.
func (s *Session) TokenExpired(now time.Time) bool {
	return !s.TokenExpiresAt.IsZero() && !now.Before(s.TokenExpiresAt)
}

// DueForCheck informa si el sweeper debe re-verificar la sesión en now.
func (s *Session) DueForCheck(now time.Time) bool {
	return s.NextCheckAt.IsZero() || !now.Before(s.NextCheckAt)
}

// ScheduleNextCheck fija el próximo chequeo en min(now+interval, exp del token).
func (s *Session) ScheduleNextCheck(now time.Time, interval time.Duration) {
	next := now.Add(interval)
	if !s.TokenExpiresAt.IsZero() && s.TokenExpiresAt.Before(next) {
		next = s.TokenExpiresAt
	}
	s.NextCheckAt = next
}
