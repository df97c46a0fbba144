package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

// shopkeeperHere returns the first shopkeeping NPC at the player's
// location, or nil.
func (s *Session) shopkeeperHere() *world.NPC {
	w := s.World
	for _, key := range w.CurrentLocation().NPCs {
		if npc := w.NPCs[key]; npc != nil && len(npc.Shop) > 0 {
			return npc
		}
	}
	return nil
}

func (s *Session) showShop() string {
	keeper := s.shopkeeperHere()
	if keeper == nil {
		return "There's no shop here."
	}
	items := make([]string, 0, len(keeper.Shop))
	for key := range keeper.Shop {
		items = append(items, key)
	}
	sort.Strings(items)

	lines := []string{fmt.Sprintf("%s's wares:", keeper.Name)}
	for _, key := range items {
		lines = append(lines, fmt.Sprintf("  %s - %d gold", key, keeper.Shop[key]))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) buyItem(key string) string {
	w := s.World
	keeper := s.shopkeeperHere()
	if keeper == nil {
		return "There's no shop here."
	}
	price, ok := keeper.Shop[key]
	if !ok {
		return fmt.Sprintf("'%s' isn't for sale.", key)
	}
	if err := w.SpendGold(price); err != nil {
		return fmt.Sprintf("You don't have enough gold (need %d).", price)
	}
	w.GrantItem(key)
	keeper.Remember(fmt.Sprintf("Sold %s to player for %d gold at %s", key, price, w.Player.Location))
	return fmt.Sprintf("You buy the %s for %d gold.", key, price)
}
