package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

// SnapshotVersion is the current snapshot schema version. Older shapes
// are coerced field-by-field on load (see world.Equipment.UnmarshalJSON)
// rather than rejected.
const SnapshotVersion = 2

// Snapshot is the full serialized form of a World plus save metadata.
type Snapshot struct {
	Version int       `json:"version"`
	ID      uuid.UUID `json:"id"`
	SavedAt time.Time `json:"saved_at"`

	Player        *world.Player              `json:"player"`
	Locations     map[string]*world.Location `json:"locations"`
	NPCs          map[string]*world.NPC      `json:"npcs"`
	Flags         map[world.Flag]bool        `json:"flags,omitempty"`
	Monster       *world.Monster             `json:"monster"`
	GameOver      bool                       `json:"game_over,omitempty"`
	GameCompleted bool                       `json:"game_completed,omitempty"`
}

// NewSnapshot captures a World at the current instant.
func NewSnapshot(w *world.World) *Snapshot {
	return &Snapshot{
		Version:       SnapshotVersion,
		ID:            uuid.New(),
		SavedAt:       time.Now().UTC(),
		Player:        w.Player,
		Locations:     w.Locations,
		NPCs:          w.NPCs,
		Flags:         w.Flags,
		Monster:       w.Monster,
		GameOver:      w.GameOver,
		GameCompleted: w.GameCompleted,
	}
}

// Validate rejects snapshots that parsed as JSON but do not describe a
// playable world. A truncated or hand-edited file can decode into an
// empty struct; loading one must not take the session down.
func (s *Snapshot) Validate() error {
	if s.Player == nil {
		return fmt.Errorf("snapshot has no player")
	}
	if len(s.Locations) == 0 {
		return fmt.Errorf("snapshot has no locations")
	}
	if _, ok := s.Locations[s.Player.Location]; !ok {
		return fmt.Errorf("snapshot player location %q does not exist", s.Player.Location)
	}
	return nil
}

// World reconstructs the live World from a snapshot. Nil maps from
// older saves are replaced so callers never see them.
func (s *Snapshot) World() *world.World {
	w := &world.World{
		Player:        s.Player,
		Locations:     s.Locations,
		NPCs:          s.NPCs,
		Flags:         s.Flags,
		Monster:       s.Monster,
		GameOver:      s.GameOver,
		GameCompleted: s.GameCompleted,
	}
	if w.Flags == nil {
		w.Flags = map[world.Flag]bool{}
	}
	if w.Player != nil {
		if w.Player.Quests == nil {
			w.Player.Quests = map[string]world.QuestStage{}
		}
		if w.Player.Explored == nil {
			w.Player.Explored = map[string]bool{}
		}
		if w.Player.Achievements == nil {
			w.Player.Achievements = map[string]bool{}
		}
		if w.Player.Inventory == nil {
			w.Player.Inventory = []string{}
		}
	}
	return w
}
