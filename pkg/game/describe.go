package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/village-of-theron/pkg/quest"
	"github.com/jwebster45206/village-of-theron/pkg/world"
)

func (s *Session) describeLocation() string {
	w := s.World
	loc := w.CurrentLocation()

	lines := []string{loc.Description}
	if len(loc.Exits) > 0 {
		names := make([]string, len(loc.Exits))
		for i, e := range loc.Exits {
			names[i] = strings.ReplaceAll(e, "_", " ")
		}
		lines = append(lines, "Exits: "+strings.Join(names, ", "))
	}
	if len(loc.NPCs) > 0 {
		names := make([]string, 0, len(loc.NPCs))
		for _, key := range loc.NPCs {
			if npc := w.NPCs[key]; npc != nil {
				names = append(names, npc.Name)
			}
		}
		lines = append(lines, "You see: "+strings.Join(names, ", "))
	}
	if len(loc.Items) > 0 {
		lines = append(lines, "On the ground: "+strings.Join(loc.Items, ", "))
	}
	if w.InCombat() {
		lines = append(lines, fmt.Sprintf("In combat with %s! (HP %d)", w.Monster.Name, w.Monster.DisplayHP()))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) showInventory() string {
	p := s.World.Player
	inv := "nothing"
	if len(p.Inventory) > 0 {
		inv = strings.Join(p.Inventory, ", ")
	}
	out := fmt.Sprintf("You are carrying: %s\nGold: %d", inv, p.Gold)

	var worn []string
	for _, slot := range []world.Slot{world.SlotWeapon, world.SlotArmor, world.SlotAccessory} {
		if key, ok := p.Equipment.Get(slot); ok {
			worn = append(worn, fmt.Sprintf("%s (%s)", world.ItemName(key), slot))
		}
	}
	if len(worn) > 0 {
		out += "\nEquipped: " + strings.Join(worn, ", ")
	}
	return out
}

func (s *Session) showStats() string {
	w := s.World
	p := w.Player
	out := fmt.Sprintf("HP: %d/%d | Attack: %d | Defense: %d | Gold: %d",
		p.HP, p.MaxHP, p.AttackPower(), p.Defense(), p.Gold)
	if w.InCombat() {
		out += fmt.Sprintf(" | Foe: %s HP %d", w.Monster.Name, w.Monster.DisplayHP())
	}
	return out
}

func (s *Session) showQuests() string {
	p := s.World.Player
	lines := []string{"Quests:"}
	shown := 0
	for _, d := range quest.Defs {
		stage := p.QuestStage(d.Key)
		if stage == world.QuestNotStarted {
			continue
		}
		shown++
		lines = append(lines, fmt.Sprintf("  %s [%s] - %s", d.Name, strings.ReplaceAll(string(stage), "_", " "), d.Description))
	}
	if shown == 0 {
		return "No quests yet. The villagers may have work for you."
	}
	return strings.Join(lines, "\n")
}

func (s *Session) showMap() string {
	w := s.World
	keys := make([]string, 0, len(w.Locations))
	for key := range w.Locations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := []string{"Known lands:"}
	for _, key := range keys {
		if !w.Player.Explored[key] {
			continue
		}
		marker := "  "
		if key == w.Player.Location {
			marker = "* "
		}
		loc := w.Locations[key]
		exits := make([]string, 0, len(loc.Exits))
		for _, e := range loc.Exits {
			if w.Player.Explored[e] {
				exits = append(exits, strings.ReplaceAll(e, "_", " "))
			} else {
				exits = append(exits, "?")
			}
		}
		lines = append(lines, fmt.Sprintf("%s%s -> %s", marker, world.DisplayName(key), strings.Join(exits, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) showAchievements() string {
	p := s.World.Player
	lines := []string{"Achievements:"}
	for _, a := range quest.Achievements {
		mark := "[ ]"
		if p.Achievements[a.Key] {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("  %s %s - %s", mark, a.Name, a.Description))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) showRelationships() string {
	w := s.World
	keys := make([]string, 0, len(w.NPCs))
	for key := range w.NPCs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := []string{"Relationships:"}
	for _, key := range keys {
		npc := w.NPCs[key]
		lines = append(lines, fmt.Sprintf("  %s - %s (%d), feeling %s",
			npc.Name, npc.Tier(), npc.RelationshipPoints, npc.Emotion))
	}
	return strings.Join(lines, "\n")
}
