package world

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies catalog items.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryAccessory  Category = "accessory"
	CategoryConsumable Category = "consumable"
	CategoryQuest      Category = "quest"
	CategoryMaterial   Category = "material"
)

// Stats is the stat-modifier mapping carried by an item.
// Zero fields mean the item does not touch that stat.
type Stats struct {
	Attack  int `json:"attack,omitempty"`
	Defense int `json:"defense,omitempty"`
	MaxHP   int `json:"max_hp,omitempty"`
	HPRegen int `json:"hp_regen,omitempty"`
	Heal    int `json:"heal,omitempty"`
}

// Item is an immutable catalog entry. Inventories and locations
// reference items by key only.
type Item struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Stats       Stats    `json:"stats"`
	Value       int      `json:"value"`
	Equipable   bool     `json:"equipable"`
}

var titleCaser = cases.Title(language.English)

// DisplayName renders an entity key as a human-readable name,
// e.g. "hidden_cave" -> "Hidden Cave".
func DisplayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// Catalog is the static item lookup table.
var Catalog = map[string]Item{
	"rusty_sword": {
		Key: "rusty_sword", Name: "Rusty Sword", Category: CategoryWeapon,
		Description: "A chipped blade, better than bare fists.",
		Stats:       Stats{Attack: 2}, Value: 10, Equipable: true,
	},
	"iron_sword": {
		Key: "iron_sword", Name: "Iron Sword", Category: CategoryWeapon,
		Description: "Honest village steel, freshly ground.",
		Stats:       Stats{Attack: 4}, Value: 25, Equipable: true,
	},
	"steel_sword": {
		Key: "steel_sword", Name: "Steel Sword", Category: CategoryWeapon,
		Description: "Rogan's finest work, forged from cave iron.",
		Stats:       Stats{Attack: 6}, Value: 60, Equipable: true,
	},
	"leather_armor": {
		Key: "leather_armor", Name: "Leather Armor", Category: CategoryArmor,
		Description: "Boiled leather, scuffed but serviceable.",
		Stats:       Stats{Defense: 2}, Value: 20, Equipable: true,
	},
	"iron_armor": {
		Key: "iron_armor", Name: "Iron Armor", Category: CategoryArmor,
		Description: "Heavy plates that turn aside claws and fangs.",
		Stats:       Stats{Defense: 4}, Value: 45, Equipable: true,
	},
	"lucky_charm": {
		Key: "lucky_charm", Name: "Lucky Charm", Category: CategoryAccessory,
		Description: "A worn rabbit's foot on a leather cord.",
		Stats:       Stats{MaxHP: 3}, Value: 15, Equipable: true,
	},
	"ember_amulet": {
		Key: "ember_amulet", Name: "Ember Amulet", Category: CategoryAccessory,
		Description: "Warm to the touch; old forge magic lingers in it.",
		Stats:       Stats{Defense: 1, HPRegen: 1}, Value: 35, Equipable: true,
	},
	"health_potion": {
		Key: "health_potion", Name: "Health Potion", Category: CategoryConsumable,
		Description: "A red draught that knits small wounds.",
		Stats:       Stats{Heal: 10}, Value: 10,
	},
	"wolf_pelt": {
		Key: "wolf_pelt", Name: "Wolf Pelt", Category: CategoryMaterial,
		Description: "Thick grey fur, proof of a kill.",
		Value:       4,
	},
	"iron_ore": {
		Key: "iron_ore", Name: "Iron Ore", Category: CategoryMaterial,
		Description: "A heavy lump of raw iron from the cave.",
		Value:       6,
	},
	"silver_ore": {
		Key: "silver_ore", Name: "Silver Ore", Category: CategoryMaterial,
		Description: "Pale ore that glints in low light.",
		Value:       12,
	},
	"moonpetal_herb": {
		Key: "moonpetal_herb", Name: "Moonpetal Herb", Category: CategoryMaterial,
		Description: "A silvery flower that blooms in deep shade.",
		Value:       8,
	},
	"healing_salve": {
		Key: "healing_salve", Name: "Healing Salve", Category: CategoryQuest,
		Description: "Sera's brew for the Elder's sickness.",
	},
	"glimmering_gem": {
		Key: "glimmering_gem", Name: "Glimmering Gem", Category: CategoryQuest,
		Description: "A gem that catches light even in darkness.",
		Value:       50,
	},
	"ancient_scroll": {
		Key: "ancient_scroll", Name: "Ancient Scroll", Category: CategoryQuest,
		Description: "Brittle vellum covered in the old script.",
	},
	"silver_locket": {
		Key: "silver_locket", Name: "Silver Locket", Category: CategoryQuest,
		Description: "A tarnished locket with a faded portrait inside.",
	},
	"vault_key": {
		Key: "vault_key", Name: "Vault Key", Category: CategoryQuest,
		Description: "Silver and gemstone, cut for one lock only.",
	},
	"crown_of_theron": {
		Key: "crown_of_theron", Name: "Crown of Theron", Category: CategoryQuest,
		Description: "The lost crown of the old kings.",
		Value:       500,
	},
}

// ItemName returns the display name for an item key, falling back
// to the key itself for unknown items.
func ItemName(key string) string {
	if it, ok := Catalog[key]; ok {
		return it.Name
	}
	return key
}
