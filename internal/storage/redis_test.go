package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := NewRedisStore(mr.Addr(), testLogger())
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Ping(context.Background()))
	return store
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	w := world.Build()
	w.Player.Gold = 63
	w.Player.Location = "deep_forest"
	require.NoError(t, store.Save(ctx, "slot1", NewSnapshot(w)))

	snap, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	got := snap.World()
	assert.Equal(t, 63, got.Player.Gold)
	assert.Equal(t, "deep_forest", got.Player.Location)
}

func TestRedisStore_MissingSlot(t *testing.T) {
	store := newRedisStore(t)

	snap, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisStore_List(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()
	w := world.Build()

	require.NoError(t, store.Save(ctx, "alpha", NewSnapshot(w)))
	require.NoError(t, store.Save(ctx, "beta", NewSnapshot(w)))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	names := []string{infos[0].Name, infos[1].Name}
	assert.Contains(t, names, "alpha")
	assert.Contains(t, names, "beta")
}

func TestRedisStore_SanitizesSlotNames(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "My Save!", NewSnapshot(world.Build())))
	snap, err := store.Load(ctx, "my_save_")
	require.NoError(t, err)
	assert.NotNil(t, snap)
}
