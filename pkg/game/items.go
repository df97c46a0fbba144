package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/village-of-theron/pkg/quest"
	"github.com/jwebster45206/village-of-theron/pkg/world"
)

func (s *Session) takeItem(ctx context.Context, key string) string {
	w := s.World
	if err := w.TakeItem(key); err != nil {
		return fmt.Sprintf("You don't see a '%s' here.", key)
	}
	out := fmt.Sprintf("You take the %s.", key)

	outcome := quest.OnTake(w, key)
	if outcome.Fired {
		out += "\n" + strings.Join(outcome.Lines, "\n")
		out = s.afterQuestMilestones(ctx, out, outcome.Completed)
	}
	return out
}

func (s *Session) dropItem(key string) string {
	if err := s.World.DropItem(key); err != nil {
		return fmt.Sprintf("You're not carrying a '%s'.", key)
	}
	return fmt.Sprintf("You drop the %s.", key)
}

func (s *Session) equipItem(key string) string {
	w := s.World
	prev, err := w.Equip(key)
	switch err {
	case nil:
	case world.ErrItemNotFound:
		return fmt.Sprintf("You're not carrying a '%s'.", key)
	case world.ErrNotEquipable:
		return fmt.Sprintf("You can't equip the %s.", key)
	default:
		return fmt.Sprintf("You can't equip the %s.", key)
	}
	out := fmt.Sprintf("You equip the %s.", world.ItemName(key))
	if prev != "" && prev != key {
		out += fmt.Sprintf(" The %s goes back in your pack.", world.ItemName(prev))
	}
	return out
}

func (s *Session) unequipItem(arg string) string {
	w := s.World
	slot := world.Slot(arg)
	switch slot {
	case world.SlotWeapon, world.SlotArmor, world.SlotAccessory:
	default:
		// Allow "unequip <item>" by resolving the item's slot.
		found := false
		for _, candidate := range []world.Slot{world.SlotWeapon, world.SlotArmor, world.SlotAccessory} {
			if key, ok := w.Player.Equipment.Get(candidate); ok && key == arg {
				slot = candidate
				found = true
				break
			}
		}
		if !found {
			return fmt.Sprintf("Nothing called '%s' is equipped.", arg)
		}
	}
	key, err := w.Unequip(slot)
	if err != nil {
		return fmt.Sprintf("Nothing is equipped in the %s slot.", slot)
	}
	return fmt.Sprintf("You unequip the %s.", world.ItemName(key))
}

func (s *Session) useItem(key string) string {
	w := s.World
	if !w.Player.HasItem(key) {
		return fmt.Sprintf("You're not carrying a '%s'.", key)
	}
	it, ok := world.Catalog[key]
	if !ok || it.Category != world.CategoryConsumable {
		return fmt.Sprintf("You can't use the %s like that.", key)
	}
	if it.Stats.Heal > 0 && w.Player.HP >= w.Player.MaxHP {
		return "You're already at full health."
	}
	_ = w.ConsumeItem(key)
	healed := w.Heal(it.Stats.Heal)
	return fmt.Sprintf("You drink the %s and recover %d HP. (Your HP %d/%d)",
		world.ItemName(key), healed, w.Player.HP, w.Player.MaxHP)
}
