package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore almacén de sesiones en proceso. Guarda copias para que los llamadores
// no compartan punteros con el mapa interno.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore ttl <= 0 desactiva la expiración absoluta.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{sessions: map[string]entity.Session{}, ttl: ttl, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.now = now
	return s
}

func (s *SessionStore) Create(_ context.Context, sess *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.expired(sess) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	return &sess, nil
}

// Save solo actualiza sesiones existentes; una sesión borrada en paralelo no se resucita.
func (s *SessionStore) Save(_ context.Context, sess *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; !ok {
		return nil
	}
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// List devuelve las sesiones vigentes ordenadas por creación.
func (s *SessionStore) List(_ context.Context) ([]*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			continue
		}
		sess := sess
		out = append(out, &sess)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *SessionStore) expired(sess entity.Session) bool {
	return s.ttl > 0 && !s.now().Before(sess.CreatedAt.Add(s.ttl))
}
