package combat

import (
	"strings"
	"testing"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

func testWorld() *world.World {
	return world.Build()
}

func TestRNG_Between(t *testing.T) {
	rng := NewRNG(1)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := rng.Between(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Between(2,5) returned %d", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("Between(2,5) never produced %d in 1000 samples", v)
		}
	}
	if got := rng.Between(3, 3); got != 3 {
		t.Errorf("Between(3,3) = %d, want 3", got)
	}
}

func TestRNG_Percent(t *testing.T) {
	rng := NewRNG(2)
	hits := 0
	for i := 0; i < 10000; i++ {
		if rng.Percent(60) {
			hits++
		}
	}
	if hits < 5500 || hits > 6500 {
		t.Errorf("Percent(60) hit %d/10000, outside sanity band", hits)
	}
	if rng.Percent(0) {
		t.Error("Percent(0) should never succeed")
	}
	if !rng.Percent(100) {
		t.Error("Percent(100) should always succeed")
	}
}

func TestPlayerDamage_VarianceBounds(t *testing.T) {
	c := NewResolver(NewRNG(3))

	// Bare fists: base 3, variance max(1, 3/4) = 1.
	bare := &world.Player{BaseAttack: 3}
	for i := 0; i < 500; i++ {
		dmg := c.PlayerDamage(bare)
		if dmg < 2 || dmg > 4 {
			t.Fatalf("unarmed damage %d outside [2,4]", dmg)
		}
	}

	// Steel sword: base 9, variance max(1, 9/4) = 2.
	armed := &world.Player{
		BaseAttack: 3,
		Inventory:  []string{"steel_sword"},
		Equipment:  world.Equipment{Weapon: "steel_sword"},
	}
	for i := 0; i < 500; i++ {
		dmg := c.PlayerDamage(armed)
		if dmg < 7 || dmg > 11 {
			t.Fatalf("armed damage %d outside [7,11]", dmg)
		}
	}
}

func TestMonsterDamage_FlooredAtOne(t *testing.T) {
	c := NewResolver(NewRNG(4))
	mon := world.Bestiary["giant_rat"].Spawn(0) // attack 1-3

	for i := 0; i < 200; i++ {
		dmg := c.MonsterDamage(mon, 50)
		if dmg != 1 {
			t.Fatalf("overwhelming defense should floor damage at 1, got %d", dmg)
		}
	}
	for i := 0; i < 200; i++ {
		dmg := c.MonsterDamage(mon, 0)
		if dmg < 1 || dmg > 3 {
			t.Fatalf("undefended damage %d outside [1,3]", dmg)
		}
	}
}

func TestAttack_Idle(t *testing.T) {
	c := NewResolver(NewRNG(5))
	w := testWorld()

	res := c.Attack(w)
	if res.Victory || res.Defeat {
		t.Error("idle attack should resolve nothing")
	}
	if len(res.Lines) != 1 || res.Lines[0] != "There's nothing to attack." {
		t.Errorf("unexpected lines: %v", res.Lines)
	}

	res = c.Defend(w)
	if len(res.Lines) != 1 || res.Lines[0] != "You're not in combat." {
		t.Errorf("unexpected lines: %v", res.Lines)
	}
}

func TestAttack_Victory(t *testing.T) {
	c := NewResolver(NewRNG(6))
	w := testWorld()
	w.Player.Location = "hidden_cave"
	loc := w.CurrentLocation()

	mon := c.Engage(w, "cave_beast", 1)
	goldBefore := w.Player.Gold

	res := c.Attack(w)
	if !res.Victory {
		t.Fatal("attack against 1 HP boss should always win")
	}
	if w.InCombat() {
		t.Error("combat should have ended")
	}
	if w.Player.Gold != goldBefore+15 {
		t.Errorf("expected +15 gold, got %d -> %d", goldBefore, w.Player.Gold)
	}
	if !loc.Boss.Defeated {
		t.Error("boss should be marked defeated at its location")
	}
	if !loc.HasItem("iron_ore") {
		t.Error("boss drop iron_ore should be unlocked at the location")
	}
	if mon.HP > 0 {
		t.Errorf("monster HP should be <= 0, got %d", mon.HP)
	}
	if mon.DisplayHP() != 0 {
		t.Errorf("display HP should clamp at 0, got %d", mon.DisplayHP())
	}
}

func TestCombat_HPStaysInBounds(t *testing.T) {
	c := NewResolver(NewRNG(7))
	w := testWorld()
	w.Player.Location = "hidden_cave"

	c.Engage(w, "cave_beast", 0)
	for !w.GameOver && w.InCombat() {
		res := c.Attack(w)
		if w.Player.HP < 0 || w.Player.HP > w.Player.MaxHP {
			t.Fatalf("player HP %d left [0,%d]", w.Player.HP, w.Player.MaxHP)
		}
		if w.InCombat() && w.Monster.DisplayHP() < 0 {
			t.Fatalf("display HP went negative")
		}
		_ = res
	}
}

func TestDefeat_SetsGameOver(t *testing.T) {
	c := NewResolver(NewRNG(8))
	w := testWorld()
	w.Player.HP = 1
	c.Engage(w, "ruin_guardian", 0) // attack 4-7, always >= 1 after defense

	res := c.Defend(w)
	if !res.Defeat {
		t.Fatal("1 HP player defending against the guardian must fall")
	}
	if !w.GameOver {
		t.Error("expected game_over flag")
	}
	if w.InCombat() {
		t.Error("combat should end on defeat")
	}
	if w.Player.HP != 0 {
		t.Errorf("expected HP clamped at 0, got %d", w.Player.HP)
	}
}

func TestFlee_BossStashesWoundedHP(t *testing.T) {
	// Flee succeeds 60% of the time; retry fresh setups until one
	// succeeds. Statistically certain well before the cap.
	c := NewResolver(NewRNG(9))
	for attempt := 0; attempt < 200; attempt++ {
		w := testWorld()
		w.Player.Location = "hidden_cave"
		w.Player.Explored["hidden_cave"] = true
		loc := w.CurrentLocation()

		c.Engage(w, "cave_beast", 0)
		w.Monster.HP = 10 // wounded mid-fight

		res := c.Flee(w)
		if w.GameOver {
			continue
		}
		if !res.Fled {
			if !w.InCombat() {
				t.Fatal("failed flee must keep combat running")
			}
			continue
		}

		if w.InCombat() {
			t.Fatal("successful flee must end combat")
		}
		if w.Player.Location != "forest_path" {
			t.Fatalf("expected flee fallback forest_path, got %q", w.Player.Location)
		}
		if loc.Boss.RemainingHP != 10 {
			t.Fatalf("expected wounded HP 10 stashed at the boss's location, got %d", loc.Boss.RemainingHP)
		}

		// Re-entry restores the wounded boss, not a fresh one.
		mon := c.RollEncounter(w, loc)
		if mon == nil || mon.Key != "cave_beast" {
			t.Fatalf("expected cave_beast on re-entry, got %+v", mon)
		}
		if mon.HP != 10 {
			t.Fatalf("expected restored HP 10, got %d", mon.HP)
		}
		return
	}
	t.Fatal("flee never succeeded in 200 attempts")
}

func TestFlee_NonBossDiscarded(t *testing.T) {
	c := NewResolver(NewRNG(10))
	for attempt := 0; attempt < 200; attempt++ {
		w := testWorld()
		w.Player.Location = "forest_path"
		w.Player.Explored["forest_path"] = true
		loc := w.CurrentLocation()

		c.Engage(w, "forest_wolf", 0)
		w.Monster.HP = 5

		res := c.Flee(w)
		if w.GameOver || !res.Fled {
			continue
		}
		if loc.Boss != nil {
			t.Fatal("forest_path should have no boss record")
		}
		if w.InCombat() {
			t.Fatal("fled encounter should discard the monster")
		}
		if w.Player.Location != "village_square" {
			t.Fatalf("expected fallback village_square, got %q", w.Player.Location)
		}
		return
	}
	t.Fatal("flee never succeeded in 200 attempts")
}

func TestRollEncounter_BossAlwaysEngages(t *testing.T) {
	c := NewResolver(NewRNG(11))
	w := testWorld()
	w.Player.Location = "old_mine"
	loc := w.CurrentLocation()

	mon := c.RollEncounter(w, loc)
	if mon == nil || mon.Key != "tunnel_lurker" {
		t.Fatalf("pending boss must engage, got %+v", mon)
	}
	if mon.HP != 30 {
		t.Errorf("expected full HP 30, got %d", mon.HP)
	}
}

func TestRollEncounter_DefeatedBossNeverReturns(t *testing.T) {
	c := NewResolver(NewRNG(12))
	w := testWorld()
	w.Player.Location = "old_mine"
	loc := w.CurrentLocation()
	loc.Boss.Defeated = true
	loc.EncounterChance = 0

	for i := 0; i < 50; i++ {
		if mon := c.RollEncounter(w, loc); mon != nil {
			t.Fatalf("no encounter expected, got %+v", mon)
		}
	}
}

func TestFleeFailure_TakesFullRoll(t *testing.T) {
	c := NewResolver(NewRNG(13))
	for attempt := 0; attempt < 400; attempt++ {
		w := testWorld()
		w.Player.Location = "forest_path"
		c.Engage(w, "forest_wolf", 0)
		hpBefore := w.Player.HP

		res := c.Flee(w)
		if res.Fled {
			continue
		}
		if w.Player.HP >= hpBefore {
			t.Fatalf("failed flee must cost HP: %d -> %d", hpBefore, w.Player.HP)
		}
		line := strings.Join(res.Lines, "\n")
		if !strings.Contains(line, "stumble") {
			t.Errorf("unexpected failure text: %q", line)
		}
		return
	}
	t.Fatal("flee never failed in 400 attempts")
}
