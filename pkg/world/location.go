package world

// BossState tracks the scripted monster bound to a location. The boss
// occupies its home location, so wounded-HP persistence on flee is keyed
// here rather than in a global flag bag.
type BossState struct {
	MonsterKey  string `json:"monster_key"`
	Defeated    bool   `json:"defeated"`
	RemainingHP int    `json:"remaining_hp"` // 0 means full health
}

// Location is a node in the world graph. Exits are directed edges and
// are not necessarily symmetric.
type Location struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Exits       []string `json:"exits"`
	NPCs        []string `json:"npcs,omitempty"`
	Items       []string `json:"items,omitempty"`
	Visited     bool     `json:"visited"`
	Seeded      bool     `json:"seeded"` // one-shot first-entry item seeding done

	Boss            *BossState `json:"boss,omitempty"`
	SeedItems       []string   `json:"seed_items,omitempty"` // placed on first entry
	EncounterChance int        `json:"encounter_chance,omitempty"`
	EncounterKey    string     `json:"encounter_key,omitempty"`
	FleeFallback    string     `json:"flee_fallback,omitempty"`

	// Entry gate: moving here requires the item; BlockedText is shown
	// when the player lacks it.
	RequiresItem string `json:"requires_item,omitempty"`
	BlockedText  string `json:"blocked_text,omitempty"`
}

// HasExit reports whether dest is directly reachable from the location.
func (l *Location) HasExit(dest string) bool {
	for _, e := range l.Exits {
		if e == dest {
			return true
		}
	}
	return false
}

// HasNPC reports whether the NPC key is present at the location.
func (l *Location) HasNPC(key string) bool {
	for _, n := range l.NPCs {
		if n == key {
			return true
		}
	}
	return false
}

// HasItem reports whether the item key is on the ground here.
func (l *Location) HasItem(key string) bool {
	for _, it := range l.Items {
		if it == key {
			return true
		}
	}
	return false
}

// RemoveItem takes an item off the ground. Returns false if absent.
func (l *Location) RemoveItem(key string) bool {
	for i, it := range l.Items {
		if it == key {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// BossPending reports whether the location's scripted monster is still
// undefeated and should engage on entry.
func (l *Location) BossPending() bool {
	return l.Boss != nil && !l.Boss.Defeated
}
