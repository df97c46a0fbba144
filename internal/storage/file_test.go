package storage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"slot1":           "slot1",
		"  My Save!  ":    "my_save_",
		"auto_prove":      "auto_prove",
		"../../etc/panic": "_etc_panic",
		"":                "save",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeName(in), "input %q", in)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir(), testLogger())
	ctx := context.Background()

	w := world.Build()
	w.Player.Gold = 42
	w.GrantItem("wolf_pelt")
	require.NoError(t, w.SetQuestStage("prove_worth", world.QuestStarted))
	w.SetFlag(world.FlagSalveBrewed)

	require.NoError(t, store.Save(ctx, "slot1", NewSnapshot(w)))

	snap, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, SnapshotVersion, snap.Version)

	got := snap.World()
	assert.Equal(t, 42, got.Player.Gold)
	assert.True(t, got.Player.HasItem("wolf_pelt"))
	assert.Equal(t, world.QuestStarted, got.Player.QuestStage("prove_worth"))
	assert.True(t, got.Flag(world.FlagSalveBrewed))
	assert.Equal(t, "village_square", got.Player.Location)
}

func TestFileStore_MissingSlot(t *testing.T) {
	store := NewFileStore(t.TempDir(), testLogger())

	snap, err := store.Load(context.Background(), "nope")
	require.NoError(t, err, "missing save is not an error")
	assert.Nil(t, snap)
}

func TestFileStore_CorruptSlot(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, testLogger())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err := store.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestMockStore_IsolatesSavedState(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	w := world.Build()
	w.Player.Gold = 50

	require.NoError(t, store.Save(ctx, "slot", NewSnapshot(w)))

	// Play continues after the save; the slot must not follow along.
	w.Player.Gold = 999
	w.GrantItem("wolf_pelt")

	snap, err := store.Load(ctx, "slot")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 50, snap.Player.Gold)
	assert.False(t, snap.Player.HasItem("wolf_pelt"))

	// Each load is an independent copy.
	snap.Player.Gold = 1
	again, err := store.Load(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, 50, again.Player.Gold)
}

func TestSnapshotValidate(t *testing.T) {
	w := world.Build()

	assert.NoError(t, NewSnapshot(w).Validate())

	// {} decodes cleanly but describes nothing playable.
	var empty Snapshot
	require.NoError(t, json.Unmarshal([]byte("{}"), &empty))
	assert.Error(t, empty.Validate())

	noLocations := NewSnapshot(w)
	noLocations.Locations = nil
	assert.Error(t, noLocations.Validate())

	lost := NewSnapshot(world.Build())
	lost.Player.Location = "nowhere"
	assert.Error(t, lost.Validate())
}

func TestFileStore_ListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, testLogger())
	ctx := context.Background()
	w := world.Build()

	older := NewSnapshot(w)
	older.SavedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, store.Save(ctx, "older", older))
	require.NoError(t, store.Save(ctx, "newer", NewSnapshot(w)))
	// Corrupt files are skipped, not fatal.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("junk"), 0o644))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "newer", infos[0].Name)
	assert.Equal(t, "older", infos[1].Name)
}

func TestFileStore_ListEmptyDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never_created"), testLogger())
	infos, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSnapshot_LegacyEquipmentShapes(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, testLogger())

	// A hand-rolled older save: list-form equipment, missing maps.
	legacy := `{
		"version": 1,
		"saved_at": "2025-01-02T03:04:05Z",
		"player": {
			"location": "village_square",
			"inventory": ["iron_sword", "leather_armor"],
			"gold": 9,
			"hp": 12,
			"max_hp": 20,
			"base_attack": 3,
			"equipment": ["iron_sword", "leather_armor"]
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.json"), []byte(legacy), 0o644))

	snap, err := store.Load(context.Background(), "legacy")
	require.NoError(t, err)
	require.NotNil(t, snap)

	w := snap.World()
	assert.Equal(t, "iron_sword", w.Player.Equipment.Weapon)
	assert.Equal(t, "leather_armor", w.Player.Equipment.Armor)
	assert.NotNil(t, w.Player.Quests, "missing maps must be repaired")
	assert.NotNil(t, w.Player.Explored)
	assert.NotNil(t, w.Flags)
}
