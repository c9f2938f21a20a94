package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

const (
	keyPrefix = "console:session:"
	indexKey  = "console:sessions"
)

// SessionStore sesiones en Redis: un string JSON por sesión con TTL y un set índice para List.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessionStore ttl es la vida máxima de la sesión (0 = sin expiración).
func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

type sessionRecord struct {
	ID             string    `json:"id"`
	Token          string    `json:"token"`
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
	LastVerifiedAt time.Time `json:"last_verified_at,omitzero"`
	NextCheckAt    time.Time `json:"next_check_at,omitzero"`
	TokenExpiresAt time.Time `json:"token_expires_at,omitzero"`
}

func encode(s *entity.Session) ([]byte, error) {
	return json.Marshal(sessionRecord{
		ID: s.ID, Token: s.Token, State: string(s.State), CreatedAt: s.CreatedAt,
		LastVerifiedAt: s.LastVerifiedAt, NextCheckAt: s.NextCheckAt, TokenExpiresAt: s.TokenExpiresAt,
	})
}

func decode(raw []byte) (*entity.Session, error) {
	var r sessionRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &entity.Session{
		ID: r.ID, Token: r.Token, State: entity.GateState(r.State), CreatedAt: r.CreatedAt,
		LastVerifiedAt: r.LastVerifiedAt, NextCheckAt: r.NextCheckAt, TokenExpiresAt: r.TokenExpiresAt,
	}, nil
}

func key(id string) string { return keyPrefix + id }

func (s *SessionStore) Create(ctx context.Context, sess *entity.Session) error {
	raw, err := encode(sess)
	if err != nil {
		return fmt.Errorf("redis session encode: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key(sess.ID), raw, s.ttl)
		pipe.SAdd(ctx, indexKey, sess.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis session create: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis session get: %w", err)
	}
	sess, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("redis session decode: %w", err)
	}
	return sess, nil
}

// Save conserva el TTL restante (KEEPTTL) y no crea la clave si ya no existe (XX).
func (s *SessionStore) Save(ctx context.Context, sess *entity.Session) error {
	raw, err := encode(sess)
	if err != nil {
		return fmt.Errorf("redis session encode: %w", err)
	}
	err = s.rdb.SetArgs(ctx, key(sess.ID), raw, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key(id))
		pipe.SRem(ctx, indexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}

// List lee el índice y poda los ids cuya clave ya expiró.
func (s *SessionStore) List(ctx context.Context) ([]*entity.Session, error) {
	ids, err := s.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis session index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis session mget: %w", err)
	}

	out := make([]*entity.Session, 0, len(vals))
	var stale []any
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		sess, err := decode([]byte(str))
		if err != nil {
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, sess)
	}
	if len(stale) > 0 {
		if err := s.rdb.SRem(ctx, indexKey, stale...).Err(); err != nil {
			return out, fmt.Errorf("redis session prune: %w", err)
		}
	}
	return out, nil
}
