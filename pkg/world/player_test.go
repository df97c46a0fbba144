package world

import (
	"encoding/json"
	"testing"
)

func TestEquipmentUnmarshal_CurrentShape(t *testing.T) {
	var eq Equipment
	if err := json.Unmarshal([]byte(`{"weapon":"iron_sword","armor":"leather_armor"}`), &eq); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if eq.Weapon != "iron_sword" {
		t.Errorf("Expected iron_sword, got %q", eq.Weapon)
	}
	if eq.Armor != "leather_armor" {
		t.Errorf("Expected leather_armor, got %q", eq.Armor)
	}
	if _, ok := eq.Get(SlotAccessory); ok {
		t.Error("Accessory slot should be empty")
	}
}

func TestEquipmentUnmarshal_LegacyNestedShape(t *testing.T) {
	var eq Equipment
	data := `{"weapon":{"key":"rusty_sword"},"accessory":{"key":"lucky_charm"}}`
	if err := json.Unmarshal([]byte(data), &eq); err != nil {
		t.Fatalf("Failed to unmarshal legacy nested shape: %v", err)
	}
	if eq.Weapon != "rusty_sword" {
		t.Errorf("Expected rusty_sword, got %q", eq.Weapon)
	}
	if eq.Accessory != "lucky_charm" {
		t.Errorf("Expected lucky_charm, got %q", eq.Accessory)
	}
}

func TestEquipmentUnmarshal_LegacyListShape(t *testing.T) {
	var eq Equipment
	if err := json.Unmarshal([]byte(`["steel_sword","iron_armor","ember_amulet"]`), &eq); err != nil {
		t.Fatalf("Failed to unmarshal legacy list shape: %v", err)
	}
	if eq.Weapon != "steel_sword" || eq.Armor != "iron_armor" || eq.Accessory != "ember_amulet" {
		t.Errorf("Unexpected slotting: %+v", eq)
	}
}

func TestPlayerDefense_SumsArmorAndAccessory(t *testing.T) {
	p := &Player{
		Inventory: []string{"iron_armor", "ember_amulet"},
		Equipment: Equipment{Armor: "iron_armor", Accessory: "ember_amulet"},
	}
	if p.Defense() != 4+1 {
		t.Errorf("Expected defense 5, got %d", p.Defense())
	}
	if p.Regen() != 1 {
		t.Errorf("Expected regen 1, got %d", p.Regen())
	}
}

func TestRemoveItem_DuplicatesRemoveOne(t *testing.T) {
	p := &Player{Inventory: []string{"health_potion", "health_potion"}}
	if !p.RemoveItem("health_potion") {
		t.Fatal("Expected removal to succeed")
	}
	if len(p.Inventory) != 1 {
		t.Errorf("Expected one potion left, got %d", len(p.Inventory))
	}
}
