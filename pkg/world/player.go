package world

import "encoding/json"

// QuestStage is the progression state of a named quest.
// Stages only move forward.
type QuestStage string

const (
	QuestNotStarted QuestStage = "not_started"
	QuestStarted    QuestStage = "started"
	QuestCompleted  QuestStage = "completed"
)

func (s QuestStage) rank() int {
	switch s {
	case QuestStarted:
		return 1
	case QuestCompleted:
		return 2
	default:
		return 0
	}
}

// Slot names an equipment slot.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Equipment holds the three optional slots. An empty string means the
// slot is empty; Get forces consumers to handle absence.
type Equipment struct {
	Weapon    string `json:"weapon,omitempty"`
	Armor     string `json:"armor,omitempty"`
	Accessory string `json:"accessory,omitempty"`
}

// Get returns the item key in a slot and whether it is occupied.
func (e *Equipment) Get(slot Slot) (string, bool) {
	switch slot {
	case SlotWeapon:
		return e.Weapon, e.Weapon != ""
	case SlotArmor:
		return e.Armor, e.Armor != ""
	case SlotAccessory:
		return e.Accessory, e.Accessory != ""
	}
	return "", false
}

// Set places an item key in a slot, returning the displaced key if the
// slot was occupied.
func (e *Equipment) Set(slot Slot, key string) (string, bool) {
	prev, occupied := e.Get(slot)
	switch slot {
	case SlotWeapon:
		e.Weapon = key
	case SlotArmor:
		e.Armor = key
	case SlotAccessory:
		e.Accessory = key
	}
	return prev, occupied
}

// Clear empties a slot, returning the removed key if any.
func (e *Equipment) Clear(slot Slot) (string, bool) {
	return e.Set(slot, "")
}

// UnmarshalJSON accepts the current object form {"weapon":"iron_sword"},
// the older nested form {"weapon":{"key":"iron_sword"}}, and the oldest
// list form ["iron_sword", ...] (slotted via the catalog). Older saves
// keep loading across schema drift.
func (e *Equipment) UnmarshalJSON(data []byte) error {
	type plain Equipment
	var p plain
	if err := json.Unmarshal(data, &p); err == nil {
		*e = Equipment(p)
		return nil
	}

	var nested map[string]struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(data, &nested); err == nil {
		e.Weapon = nested["weapon"].Key
		e.Armor = nested["armor"].Key
		e.Accessory = nested["accessory"].Key
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*e = Equipment{}
	for _, key := range list {
		switch Catalog[key].Category {
		case CategoryWeapon:
			e.Weapon = key
		case CategoryArmor:
			e.Armor = key
		case CategoryAccessory:
			e.Accessory = key
		}
	}
	return nil
}

// Player is the single protagonist of a session.
type Player struct {
	Location         string                `json:"location"`
	PreviousLocation string                `json:"previous_location,omitempty"`
	Inventory        []string              `json:"inventory"`
	Quests           map[string]QuestStage `json:"quests"`
	Gold             int                   `json:"gold"`
	HP               int                   `json:"hp"`
	MaxHP            int                   `json:"max_hp"`
	BaseAttack       int                   `json:"base_attack"`
	Explored         map[string]bool       `json:"explored_areas"`
	Achievements     map[string]bool       `json:"achievements"`
	Equipment        Equipment             `json:"equipment"`
	TalkedTo         map[string]bool       `json:"talked_to,omitempty"`
}

// HasItem reports whether the item key is in the player's inventory.
func (p *Player) HasItem(key string) bool {
	for _, it := range p.Inventory {
		if it == key {
			return true
		}
	}
	return false
}

// RemoveItem drops one occurrence of an item from inventory, clearing
// any equipment slot that referenced it and reversing the item's stat
// bonuses. Returns false if absent.
func (p *Player) RemoveItem(key string) bool {
	for i, it := range p.Inventory {
		if it == key {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			if !p.HasItem(key) {
				p.unequipKey(key)
			}
			return true
		}
	}
	return false
}

func (p *Player) unequipKey(key string) {
	cleared := false
	if p.Equipment.Weapon == key {
		p.Equipment.Weapon = ""
		cleared = true
	}
	if p.Equipment.Armor == key {
		p.Equipment.Armor = ""
		cleared = true
	}
	if p.Equipment.Accessory == key {
		p.Equipment.Accessory = ""
		cleared = true
	}
	if cleared {
		p.removeMaxHPBonus(key)
	}
}

// removeMaxHPBonus reverses an equipped item's max_hp bonus, clamping
// current hp to the new maximum. Every path that empties a slot must
// pass through here or the bonus outlives the equipment.
func (p *Player) removeMaxHPBonus(key string) {
	bonus := Catalog[key].Stats.MaxHP
	if bonus == 0 {
		return
	}
	p.MaxHP -= bonus
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// AttackPower is the base attack plus the equipped weapon's attack stat.
func (p *Player) AttackPower() int {
	atk := p.BaseAttack
	if key, ok := p.Equipment.Get(SlotWeapon); ok {
		atk += Catalog[key].Stats.Attack
	}
	return atk
}

// Defense sums defense across equipped armor and accessory.
func (p *Player) Defense() int {
	def := 0
	if key, ok := p.Equipment.Get(SlotArmor); ok {
		def += Catalog[key].Stats.Defense
	}
	if key, ok := p.Equipment.Get(SlotAccessory); ok {
		def += Catalog[key].Stats.Defense
	}
	return def
}

// Regen sums hp_regen across equipped items.
func (p *Player) Regen() int {
	regen := 0
	if key, ok := p.Equipment.Get(SlotArmor); ok {
		regen += Catalog[key].Stats.HPRegen
	}
	if key, ok := p.Equipment.Get(SlotAccessory); ok {
		regen += Catalog[key].Stats.HPRegen
	}
	if key, ok := p.Equipment.Get(SlotWeapon); ok {
		regen += Catalog[key].Stats.HPRegen
	}
	return regen
}

// QuestStage returns the stage of a quest, defaulting to not_started.
func (p *Player) QuestStage(key string) QuestStage {
	if s, ok := p.Quests[key]; ok {
		return s
	}
	return QuestNotStarted
}
