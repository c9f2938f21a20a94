package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/busfleet-console/internal/domain"
	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
	"github.com/jhoicas/busfleet-console/pkg/logger"
)

// Gate revalida sesiones contra el backend: verifying → {verified, unverified}.
// Cualquier fallo (red, 401, respuesta inesperada) borra la sesión; no hay reintentos.
type Gate struct {
	gateway  repository.AuthGateway
	sessions repository.SessionRepository
	interval time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// NewGate interval es el periodo fijo de re-verificación.
func NewGate(gateway repository.AuthGateway, sessions repository.SessionRepository, interval time.Duration, log *logger.Logger) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{gateway: gateway, sessions: sessions, interval: interval, log: log.Named("auth-gate"), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (g *Gate) WithClock(now func() time.Time) *Gate {
	g.now = now
	return g
}

// Interval periodo de re-verificación.
func (g *Gate) Interval() time.Duration { return g.interval }

// Check verifica la sesión ahora. Devuelve la sesión verificada o un error que envuelve
// domain.ErrUnauthorized; en ese caso la sesión ya fue borrada.
func (g *Gate) Check(ctx context.Context, sessionID string) (*entity.Session, error) {
	sess, err := g.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return g.verify(ctx, sess)
}

// Poll sondeo periódico desde las páginas: solo consulta al backend si el chequeo está vencido.
func (g *Gate) Poll(ctx context.Context, sessionID string) (*entity.Session, error) {
	sess, err := g.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State == entity.GateVerified && !sess.DueForCheck(g.now()) {
		return sess, nil
	}
	return g.verify(ctx, sess)
}

// load lee la sesión de la cookie. Un id que no es UUID no llega al almacén.
func (g *Gate) load(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" || uuid.Validate(sessionID) != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := g.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: leer sesión: %v", domain.ErrUnauthorized, err)
	}
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	return sess, nil
}

func (g *Gate) verify(ctx context.Context, sess *entity.Session) (*entity.Session, error) {
	now := g.now().UTC()
	if sess.TokenExpired(now) {
		g.evict(ctx, sess, "token expirado")
		return nil, fmt.Errorf("%w: token expirado", domain.ErrUnauthorized)
	}
	if err := g.gateway.Verify(ctx, sess.Token); err != nil {
		g.evict(ctx, sess, err.Error())
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	sess.State = entity.GateVerified
	sess.LastVerifiedAt = now
	sess.ScheduleNextCheck(now, g.interval)
	if err := g.sessions.Save(ctx, sess); err != nil {
		g.log.Warn().Err(err).Str("session", sess.ID).Msg("guardar estado de sesión")
	}
	return sess, nil
}

func (g *Gate) evict(ctx context.Context, sess *entity.Session, reason string) {
	sess.State = entity.GateUnverified
	if err := g.sessions.Delete(ctx, sess.ID); err != nil {
		g.log.Warn().Err(err).Str("session", sess.ID).Msg("borrar sesión no verificada")
	}
	g.log.Info().Str("session", sess.ID).Str("reason", reason).Msg("sesión no verificada")
}

// Sweep revalida las sesiones con chequeo vencido. Devuelve cuántas fueron desalojadas.
func (g *Gate) Sweep(ctx context.Context) (int, error) {
	list, err := g.sessions.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listar sesiones: %w", err)
	}
	now := g.now()
	evicted := 0
	for _, sess := range list {
		if ctx.Err() != nil {
			return evicted, ctx.Err()
		}
		if !sess.DueForCheck(now) {
			continue
		}
		if _, err := g.verify(ctx, sess); err != nil {
			evicted++
		}
	}
	return evicted, nil
}

// Run ejecuta Sweep cada intervalo hasta que ctx se cancele.
func (g *Gate) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()
	g.log.Info().Dur("interval", g.interval).Msg("sweeper de sesiones iniciado")
	for {
		select {
		case <-ctx.Done():
			g.log.Info().Msg("sweeper de sesiones detenido")
			return
		case <-ticker.C:
			evicted, err := g.Sweep(ctx)
			if err != nil && ctx.Err() == nil {
				g.log.Error().Err(err).Msg("sweep de sesiones")
				continue
			}
			if evicted > 0 {
				g.log.Info().Int("evicted", evicted).Msg("sesiones desalojadas")
			}
		}
	}
}
