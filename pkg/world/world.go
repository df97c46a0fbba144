package world

import (
	"errors"
	"fmt"
)

// Flag is a typed key for the small set of one-shot progression guards.
// Combat and boss state live on World and Location directly; flags cover
// only quest-side one-shots.
type Flag string

const (
	FlagSalveBrewed Flag = "salve_brewed"
)

// Sentinel conditions reported by mutators. They are rendered as
// in-fiction text by the caller, never surfaced as crashes.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrNoExit           = errors.New("no such exit")
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrQuestRegression  = errors.New("quest stage cannot move backward")
	ErrNotEquipable     = errors.New("item is not equipable")
)

// World is the aggregate root owning all mutable game state. Exactly one
// World is live per session; it is the unit of save/load.
type World struct {
	Player        *Player              `json:"player"`
	Locations     map[string]*Location `json:"locations"`
	NPCs          map[string]*NPC      `json:"npcs"`
	Flags         map[Flag]bool        `json:"flags,omitempty"`
	Monster       *Monster             `json:"monster,omitempty"`
	GameOver      bool                 `json:"game_over"`
	GameCompleted bool                 `json:"game_completed"`
}

// InCombat reports whether a monster is bound. The monster pointer is
// the single source of truth for combat state.
func (w *World) InCombat() bool {
	return w.Monster != nil
}

// CurrentLocation returns the location the player occupies.
func (w *World) CurrentLocation() *Location {
	return w.Locations[w.Player.Location]
}

// Flag reads a one-shot progression guard.
func (w *World) Flag(f Flag) bool {
	return w.Flags[f]
}

// SetFlag raises a one-shot progression guard.
func (w *World) SetFlag(f Flag) {
	if w.Flags == nil {
		w.Flags = make(map[Flag]bool)
	}
	w.Flags[f] = true
}

// MovePlayer relocates the player along an exit edge. The destination
// must be an exit of the current location and must not be gated by a
// missing item.
func (w *World) MovePlayer(dest string) error {
	cur := w.CurrentLocation()
	if !cur.HasExit(dest) {
		return ErrNoExit
	}
	target, ok := w.Locations[dest]
	if !ok {
		return ErrNoExit
	}
	if target.RequiresItem != "" && !w.Player.HasItem(target.RequiresItem) {
		return fmt.Errorf("%s", target.BlockedText)
	}
	w.Player.PreviousLocation = w.Player.Location
	w.Player.Location = dest
	if w.Player.Explored == nil {
		w.Player.Explored = make(map[string]bool)
	}
	w.Player.Explored[dest] = true
	return nil
}

// Relocate moves the player without edge checks (flee fallback). The
// destination still counts as explored.
func (w *World) Relocate(dest string) {
	if _, ok := w.Locations[dest]; !ok {
		return
	}
	w.Player.PreviousLocation = w.Player.Location
	w.Player.Location = dest
	if w.Player.Explored == nil {
		w.Player.Explored = make(map[string]bool)
	}
	w.Player.Explored[dest] = true
}

// TakeItem moves an item from the current location's ground to the
// player's inventory.
func (w *World) TakeItem(key string) error {
	loc := w.CurrentLocation()
	if !loc.RemoveItem(key) {
		return ErrItemNotFound
	}
	w.Player.Inventory = append(w.Player.Inventory, key)
	return nil
}

// DropItem moves an item from inventory to the current location's ground.
func (w *World) DropItem(key string) error {
	if !w.Player.RemoveItem(key) {
		return ErrItemNotFound
	}
	loc := w.CurrentLocation()
	loc.Items = append(loc.Items, key)
	return nil
}

// GrantItem places an item directly into the player's inventory.
func (w *World) GrantItem(key string) {
	w.Player.Inventory = append(w.Player.Inventory, key)
}

// ConsumeItem removes an item from inventory without placing it anywhere.
func (w *World) ConsumeItem(key string) error {
	if !w.Player.RemoveItem(key) {
		return ErrItemNotFound
	}
	return nil
}

// SpendGold deducts a price, failing without mutation if the player
// cannot afford it.
func (w *World) SpendGold(amount int) error {
	if w.Player.Gold < amount {
		return ErrInsufficientGold
	}
	w.Player.Gold -= amount
	return nil
}

// AddGold grants gold.
func (w *World) AddGold(amount int) {
	w.Player.Gold += amount
}

// Heal restores hp up to max_hp and returns the amount actually healed,
// not the amount requested.
func (w *World) Heal(amount int) int {
	p := w.Player
	healed := amount
	if p.HP+healed > p.MaxHP {
		healed = p.MaxHP - p.HP
	}
	p.HP += healed
	return healed
}

// Damage reduces player hp, clamped at zero. Reaching zero sets
// game_over. Returns the player's remaining hp.
func (w *World) Damage(amount int) int {
	p := w.Player
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		w.GameOver = true
	}
	return p.HP
}

// RaiseMaxHP increases max_hp and heals the same amount.
func (w *World) RaiseMaxHP(amount int) {
	w.Player.MaxHP += amount
	w.Player.HP += amount
}

// SetQuestStage advances a quest. Stages move forward only; a no-op
// advance (same stage) is allowed, a regression is an error.
func (w *World) SetQuestStage(quest string, stage QuestStage) error {
	cur := w.Player.QuestStage(quest)
	if stage.rank() < cur.rank() {
		return ErrQuestRegression
	}
	if w.Player.Quests == nil {
		w.Player.Quests = make(map[string]QuestStage)
	}
	w.Player.Quests[quest] = stage
	return nil
}

// Equip places an inventory item into its category's slot. A displaced
// item stays in inventory. Returns the displaced key, if any.
func (w *World) Equip(key string) (string, error) {
	if !w.Player.HasItem(key) {
		return "", ErrItemNotFound
	}
	it, ok := Catalog[key]
	if !ok || !it.Equipable {
		return "", ErrNotEquipable
	}
	var slot Slot
	switch it.Category {
	case CategoryWeapon:
		slot = SlotWeapon
	case CategoryArmor:
		slot = SlotArmor
	case CategoryAccessory:
		slot = SlotAccessory
	default:
		return "", ErrNotEquipable
	}
	prev, _ := w.Player.Equipment.Set(slot, key)
	if prev == key {
		return prev, nil
	}
	if prev != "" {
		w.Player.removeMaxHPBonus(prev)
	}
	w.Player.MaxHP += it.Stats.MaxHP
	return prev, nil
}

// Unequip empties a slot. The item remains in inventory.
func (w *World) Unequip(slot Slot) (string, error) {
	key, ok := w.Player.Equipment.Clear(slot)
	if !ok {
		return "", ErrItemNotFound
	}
	w.Player.removeMaxHPBonus(key)
	return key, nil
}

// MarkTalked records that the player has spoken with an NPC.
func (w *World) MarkTalked(npcKey string) {
	if w.Player.TalkedTo == nil {
		w.Player.TalkedTo = make(map[string]bool)
	}
	w.Player.TalkedTo[npcKey] = true
}
