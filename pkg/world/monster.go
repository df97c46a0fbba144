package world

// Monster is an active combatant. HP may go negative transiently
// during resolution; defeat is checked as <= 0 and display clamps at 0.
type Monster struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	AttackMin int    `json:"attack_min"`
	AttackMax int    `json:"attack_max"`
}

// DisplayHP is the externally observed HP, clamped at zero.
func (m *Monster) DisplayHP() int {
	if m.HP < 0 {
		return 0
	}
	return m.HP
}

// MonsterDef is a species template in the bestiary.
type MonsterDef struct {
	Key       string
	Name      string
	MaxHP     int
	AttackMin int
	AttackMax int
	Gold      int    // victory reward
	Boss      bool   // scripted, location-bound; wounded HP persists on flee
	Drop      string // item unlocked at the boss location on defeat
}

// Spawn creates a live monster from the template at the given HP.
// hp <= 0 means full health.
func (d MonsterDef) Spawn(hp int) *Monster {
	if hp <= 0 {
		hp = d.MaxHP
	}
	return &Monster{
		Key:       d.Key,
		Name:      d.Name,
		HP:        hp,
		AttackMin: d.AttackMin,
		AttackMax: d.AttackMax,
	}
}

// Bestiary is the static monster lookup table.
var Bestiary = map[string]MonsterDef{
	"forest_wolf": {
		Key: "forest_wolf", Name: "Forest Wolf",
		MaxHP: 12, AttackMin: 2, AttackMax: 4, Gold: 5,
		Drop: "wolf_pelt",
	},
	"giant_rat": {
		Key: "giant_rat", Name: "Giant Rat",
		MaxHP: 8, AttackMin: 1, AttackMax: 3, Gold: 3,
	},
	"restless_wisp": {
		Key: "restless_wisp", Name: "Restless Wisp",
		MaxHP: 10, AttackMin: 2, AttackMax: 5, Gold: 4,
	},
	"cave_beast": {
		Key: "cave_beast", Name: "Cave Beast",
		MaxHP: 25, AttackMin: 2, AttackMax: 5, Gold: 15,
		Boss: true, Drop: "iron_ore",
	},
	"tunnel_lurker": {
		Key: "tunnel_lurker", Name: "Tunnel Lurker",
		MaxHP: 30, AttackMin: 3, AttackMax: 6, Gold: 20,
		Boss: true, Drop: "silver_ore",
	},
	"ruin_guardian": {
		Key: "ruin_guardian", Name: "Stone Guardian",
		MaxHP: 40, AttackMin: 4, AttackMax: 7, Gold: 30,
		Boss: true, Drop: "ancient_scroll",
	},
}

// IsBoss reports whether a monster key is on the boss allowlist.
func IsBoss(key string) bool {
	return Bestiary[key].Boss
}
