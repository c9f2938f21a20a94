package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

// Asegura que SessionRepo implementa repository.SessionRepository.
var _ repository.SessionRepository = (*SessionRepo)(nil)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS console_sessions (
	id               UUID PRIMARY KEY,
	token            TEXT        NOT NULL,
	state            TEXT        NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL,
	last_verified_at TIMESTAMPTZ,
	next_check_at    TIMESTAMPTZ,
	token_expires_at TIMESTAMPTZ,
	expires_at       TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_console_sessions_expires_at ON console_sessions (expires_at);`

// SessionRepo implementación del almacén de sesiones sobre PostgreSQL.
type SessionRepo struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

// NewSessionRepository construye el adaptador. ttl <= 0 = sesiones sin expiración absoluta.
func NewSessionRepository(pool *pgxpool.Pool, ttl time.Duration) *SessionRepo {
	return &SessionRepo{pool: pool, ttl: ttl}
}

// EnsureSchema crea la tabla console_sessions si no existe.
func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("crear esquema de sesiones: %w", err)
	}
	return nil
}

// Create persiste una nueva sesión.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	var expiresAt *time.Time
	if r.ttl > 0 {
		expiresAt = nullTime(s.CreatedAt.Add(r.ttl))
	}
	query := `
		INSERT INTO console_sessions (id, token, state, created_at, last_verified_at, next_check_at, token_expires_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Token, string(s.State), s.CreatedAt,
		nullTime(s.LastVerifiedAt), nullTime(s.NextCheckAt), nullTime(s.TokenExpiresAt), expiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get obtiene una sesión vigente por ID; (nil, nil) si no existe o expiró.
func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	query := `
		SELECT id, token, state, created_at, last_verified_at, next_check_at, token_expires_at
		FROM console_sessions
		WHERE id = $1 AND (expires_at IS NULL OR expires_at > now())`
	s, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// Save actualiza el estado del gate; no inserta si la sesión fue eliminada.
func (r *SessionRepo) Save(ctx context.Context, s *entity.Session) error {
	query := `
		UPDATE console_sessions
		SET token = $2, state = $3, last_verified_at = $4, next_check_at = $5, token_expires_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Token, string(s.State),
		nullTime(s.LastVerifiedAt), nullTime(s.NextCheckAt), nullTime(s.TokenExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Delete elimina una sesión.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM console_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// List purga las sesiones expiradas y devuelve las vigentes.
func (r *SessionRepo) List(ctx context.Context) ([]*entity.Session, error) {
	if _, err := r.pool.Exec(ctx, `DELETE FROM console_sessions WHERE expires_at IS NOT NULL AND expires_at <= now()`); err != nil {
		return nil, fmt.Errorf("purge sessions: %w", err)
	}
	query := `
		SELECT id, token, state, created_at, last_verified_at, next_check_at, token_expires_at
		FROM console_sessions
		ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*entity.Session, error) {
	var (
		s                                  entity.Session
		state                              string
		lastVerified, nextCheck, tokenExp *time.Time
	)
	if err := row.Scan(&s.ID, &s.Token, &state, &s.CreatedAt, &lastVerified, &nextCheck, &tokenExp); err != nil {
		return nil, err
	}
	s.State = entity.GateState(state)
	s.CreatedAt = s.CreatedAt.UTC()
	s.LastVerifiedAt = fromNullTime(lastVerified)
	s.NextCheckAt = fromNullTime(nextCheck)
	s.TokenExpiresAt = fromNullTime(tokenExp)
	return &s, nil
}
