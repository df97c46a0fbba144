// Package combat implements the turn-based damage exchange between the
// player and the active monster.
package combat

import (
	"fmt"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

const (
	fleeChance       = 60
	defendBonus      = 2
	minMonsterDamage = 1
)

// Result reports the outcome of one combat action.
type Result struct {
	Lines   []string
	Victory bool
	Defeat  bool
	Fled    bool
	Gold    int    // victory reward
	Slain   string // defeated monster key
}

func (r *Result) addf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Resolver drives the encounter state machine. Idle vs in-combat is
// carried by the World's monster pointer.
type Resolver struct {
	rng *RNG
}

func NewResolver(rng *RNG) *Resolver {
	return &Resolver{rng: rng}
}

// PlayerDamage samples the player's attack damage: base attack plus the
// equipped weapon, with uniform variance of max(1, base/4).
func (c *Resolver) PlayerDamage(p *world.Player) int {
	base := p.AttackPower()
	variance := base / 4
	if variance < 1 {
		variance = 1
	}
	return c.rng.Between(base-variance, base+variance)
}

// MonsterDamage samples the monster's roll reduced by total defense,
// floored at 1: damage is never fully negated.
func (c *Resolver) MonsterDamage(m *world.Monster, defense int) int {
	dmg := c.rng.Between(m.AttackMin, m.AttackMax) - defense
	if dmg < minMonsterDamage {
		dmg = minMonsterDamage
	}
	return dmg
}

// Engage binds a monster, entering combat. hp <= 0 spawns at full health.
func (c *Resolver) Engage(w *world.World, monsterKey string, hp int) *world.Monster {
	def := world.Bestiary[monsterKey]
	w.Monster = def.Spawn(hp)
	return w.Monster
}

// RollEncounter evaluates the location's random-encounter chance once,
// at entry. A pending scripted boss always engages instead, wounded if
// the player previously fled it.
func (c *Resolver) RollEncounter(w *world.World, loc *world.Location) *world.Monster {
	if w.InCombat() {
		return w.Monster
	}
	if loc.BossPending() {
		return c.Engage(w, loc.Boss.MonsterKey, loc.Boss.RemainingHP)
	}
	if loc.EncounterChance > 0 && c.rng.Percent(loc.EncounterChance) {
		return c.Engage(w, loc.EncounterKey, 0)
	}
	return nil
}

// Attack resolves the player's attack and, if the monster survives, its
// retaliation.
func (c *Resolver) Attack(w *world.World) Result {
	var res Result
	if !w.InCombat() {
		res.addf("There's nothing to attack.")
		return res
	}
	mon := w.Monster
	dmg := c.PlayerDamage(w.Player)
	mon.HP -= dmg
	res.addf("You strike the %s for %d damage. (Foe HP %d)", mon.Name, dmg, mon.DisplayHP())
	if mon.HP <= 0 {
		c.finishVictory(w, &res)
		return res
	}
	c.retaliate(w, &res, w.Player.Defense())
	return res
}

// Defend deals no damage; it only mitigates the retaliation.
func (c *Resolver) Defend(w *world.World) Result {
	var res Result
	if !w.InCombat() {
		res.addf("You're not in combat.")
		return res
	}
	res.addf("You brace yourself behind your guard.")
	c.retaliate(w, &res, w.Player.Defense()+defendBonus)
	return res
}

// Flee attempts escape. On success the player relocates to the
// location's fallback; a boss keeps its wounded HP stashed at its home
// location, a random-encounter monster is discarded. On failure the
// monster lands one full roll and combat continues.
func (c *Resolver) Flee(w *world.World) Result {
	var res Result
	if !w.InCombat() {
		res.addf("You're not in combat.")
		return res
	}
	mon := w.Monster
	loc := w.CurrentLocation()
	if c.rng.Percent(fleeChance) {
		if world.IsBoss(mon.Key) && loc.Boss != nil && loc.Boss.MonsterKey == mon.Key {
			loc.Boss.RemainingHP = mon.HP
		}
		w.Monster = nil
		res.Fled = true
		fallback := loc.FleeFallback
		if fallback == "" {
			fallback = w.Player.PreviousLocation
		}
		w.Relocate(fallback)
		res.addf("You sprint for the exit and escape to the %s!", world.DisplayName(fallback))
		return res
	}
	dmg := c.MonsterDamage(mon, w.Player.Defense())
	hp := w.Damage(dmg)
	res.addf("You try to flee but stumble! The %s hits you for %d. (Your HP %d)", mon.Name, dmg, hp)
	if w.GameOver {
		c.finishDefeat(w, &res)
	}
	return res
}

func (c *Resolver) retaliate(w *world.World, res *Result, defense int) {
	mon := w.Monster
	dmg := c.MonsterDamage(mon, defense)
	hp := w.Damage(dmg)
	res.addf("The %s hits you for %d. (Your HP %d)", mon.Name, dmg, hp)
	if w.GameOver {
		c.finishDefeat(w, res)
	}
}

func (c *Resolver) finishVictory(w *world.World, res *Result) {
	mon := w.Monster
	def := world.Bestiary[mon.Key]
	res.Victory = true
	res.Slain = mon.Key
	res.Gold = def.Gold
	res.addf("The %s collapses. You are victorious!", mon.Name)
	if def.Gold > 0 {
		w.AddGold(def.Gold)
		res.addf("You collect %d gold from the remains.", def.Gold)
	}
	loc := w.CurrentLocation()
	if def.Boss && loc.Boss != nil && loc.Boss.MonsterKey == mon.Key {
		loc.Boss.Defeated = true
		if def.Drop != "" && !loc.HasItem(def.Drop) {
			loc.Items = append(loc.Items, def.Drop)
			res.addf("Something glints where the %s fell: %s.", mon.Name, world.ItemName(def.Drop))
		}
	} else if def.Drop != "" && c.rng.Percent(50) && !loc.HasItem(def.Drop) {
		loc.Items = append(loc.Items, def.Drop)
		res.addf("The %s leaves behind a %s.", mon.Name, world.ItemName(def.Drop))
	}
	w.Monster = nil
}

func (c *Resolver) finishDefeat(w *world.World, res *Result) {
	res.Defeat = true
	res.addf("You fall to the ground. Darkness closes in. GAME OVER.")
	w.Monster = nil
}
