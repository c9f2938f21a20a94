package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/busfleet-console/internal/domain/entity"
	"github.com/jhoicas/busfleet-console/internal/infrastructure/memory"
)

func TestSessionStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore(time.Hour)

	sess := &entity.Session{ID: "s1", Token: "tok", State: entity.GateVerifying, CreatedAt: time.Now()}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok", got.Token)

	got.State = entity.GateVerified
	assert.Equal(t, entity.GateVerifying, mustGet(t, store, "s1").State, "Get devuelve una copia")

	require.NoError(t, store.Save(ctx, got))
	assert.Equal(t, entity.GateVerified, mustGet(t, store, "s1").State)

	require.NoError(t, store.Delete(ctx, "s1"))
	missing, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Save(ctx, got))
	missing, _ = store.Get(ctx, "s1")
	assert.Nil(t, missing, "Save no resucita sesiones borradas")
}

func TestSessionStore_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewSessionStore(time.Hour).WithClock(func() time.Time { return now })

	require.NoError(t, store.Create(ctx, &entity.Session{ID: "viejo", CreatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, store.Create(ctx, &entity.Session{ID: "nuevo", CreatedAt: now}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nuevo", list[0].ID)

	old, err := store.Get(ctx, "viejo")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			_ = store.Create(ctx, &entity.Session{ID: id, CreatedAt: time.Now()})
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
			_ = store.Delete(ctx, id)
		}(i)
	}
	wg.Wait()
}

func mustGet(t *testing.T, store *memory.SessionStore, id string) *entity.Session {
	t.Helper()
	s, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}
