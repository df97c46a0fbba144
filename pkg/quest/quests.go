// Package quest holds the declarative trigger table that drives quest
// progression, plus achievements and the relationship/emotion rules.
// Rules are data, not scattered conditionals, so the trigger set is
// independently testable.
package quest

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

// Def describes a quest for display purposes.
type Def struct {
	Key         string
	Name        string
	Description string
}

// Defs lists all quests in story order.
var Defs = []Def{
	{Key: "prove_worth", Name: "Prove Your Worth", Description: "Bring Rogan a wolf pelt as proof you can handle yourself."},
	{Key: "clear_cave", Name: "Clear the Cave", Description: "Slay the beast in the hidden cave and bring Rogan its iron ore."},
	{Key: "heal_elder", Name: "Heal the Elder", Description: "Elder Maren is sick. Sera can brew a salve from moonpetal."},
	{Key: "retrieve_scroll", Name: "Retrieve the Scroll", Description: "Recover the ancient scroll from the ruins for the Elder."},
	{Key: "forge_key", Name: "Forge the Key", Description: "Rogan can forge the vault key from silver ore and the gem."},
	{Key: "final_treasure", Name: "The Final Treasure", Description: "Open the vault and claim the Crown of Theron."},
	{Key: "lost_locket", Name: "The Lost Locket", Description: "Sera lost her sister's silver locket somewhere in the forest."},
}

// Effect is what a fired trigger applies to the world.
type Effect struct {
	Consume      []string
	Grant        []string
	Gold         int
	MaxHP        int
	Relationship int // applied to the spoken-to NPC
	StartQuest   string
	CompleteGame bool
	Note         string
}

// Trigger is one declarative advancement rule. A trigger fires at most
// once per quest stage: the quest must sit exactly at From, and firing
// moves it to To, so re-satisfying a completed trigger never re-applies
// rewards.
type Trigger struct {
	Quest string
	From  world.QuestStage
	To    world.QuestStage

	NPC          string   // spoken-to NPC ("" for take-item triggers)
	TakeItem     string   // fires on taking this item instead of on talk
	Keywords     []string // any-of substring match on the utterance
	RequireItems []string // must all be held
	RequireDone  string   // prerequisite quest that must be completed
	RequireBoss  string   // location whose boss must be defeated
	OneShot      world.Flag

	Effect Effect
}

// Triggers is the full advancement table, completion rules before start
// rules for each quest.
var Triggers = []Trigger{
	// prove_worth
	{
		Quest: "prove_worth", From: world.QuestStarted, To: world.QuestCompleted,
		NPC: "blacksmith", RequireItems: []string{"wolf_pelt"},
		Effect: Effect{
			Consume: []string{"wolf_pelt"}, Gold: 15, Relationship: 10,
			Note: "Rogan turns the pelt over in his hands. 'Aye, you'll do.'",
		},
	},
	{
		Quest: "prove_worth", From: world.QuestNotStarted, To: world.QuestStarted,
		NPC: "blacksmith", Keywords: []string{"work", "help", "prove", "task"},
		Effect: Effect{Note: "'Bring me a wolf pelt from the forest and we'll talk.'"},
	},

	// clear_cave
	{
		Quest: "clear_cave", From: world.QuestStarted, To: world.QuestCompleted,
		NPC: "blacksmith", RequireItems: []string{"iron_ore"}, RequireBoss: "hidden_cave",
		Effect: Effect{
			Consume: []string{"iron_ore"}, Grant: []string{"steel_sword"},
			Gold: 20, Relationship: 15,
			Note: "Rogan hammers the cave iron into a blade and presses it into your hands.",
		},
	},
	{
		Quest: "clear_cave", From: world.QuestNotStarted, To: world.QuestStarted,
		NPC: "blacksmith", Keywords: []string{"cave", "beast", "monster"},
		RequireDone: "prove_worth",
		Effect:      Effect{Note: "'Something's denned up in the hidden cave. Kill it and bring me the ore it's been guarding.'"},
	},

	// heal_elder
	{
		Quest: "heal_elder", From: world.QuestStarted, To: world.QuestCompleted,
		NPC: "elder", RequireItems: []string{"healing_salve"},
		Effect: Effect{
			Consume: []string{"healing_salve"}, MaxHP: 5, Gold: 10, Relationship: 15,
			Note: "Color returns to Maren's face. 'You have the village's thanks, and mine.'",
		},
	},
	{
		// Salve exchange: same stage, one-shot guard.
		Quest: "heal_elder", From: world.QuestStarted, To: world.QuestStarted,
		NPC: "herbalist", RequireItems: []string{"moonpetal_herb"},
		OneShot: world.FlagSalveBrewed,
		Effect: Effect{
			Consume: []string{"moonpetal_herb"}, Grant: []string{"healing_salve"},
			Note: "Sera crushes the moonpetal into a pale salve. 'For Maren. Quickly now.'",
		},
	},
	{
		Quest: "heal_elder", From: world.QuestNotStarted, To: world.QuestStarted,
		NPC: "elder", Keywords: []string{"sick", "ill", "heal", "cure"},
		RequireDone: "clear_cave",
		Effect:      Effect{Note: "'The sickness sits deep. Sera in the forest brews a salve from moonpetal.'"},
	},

	// retrieve_scroll
	{
		Quest: "retrieve_scroll", From: world.QuestStarted, To: world.QuestCompleted,
		TakeItem: "ancient_scroll",
		Effect:   Effect{Gold: 25, Note: "The old script matches the Elder's fragments. This is what she wanted."},
	},
	{
		Quest: "retrieve_scroll", From: world.QuestNotStarted, To: world.QuestStarted,
		NPC: "elder", Keywords: []string{"scroll", "lore", "ruins"},
		RequireDone: "heal_elder",
		Effect:      Effect{Note: "'The ruins hold a scroll of the old kings. The guardian there will not part with it kindly.'"},
	},

	// forge_key
	{
		Quest: "forge_key", From: world.QuestStarted, To: world.QuestCompleted,
		NPC: "blacksmith", RequireItems: []string{"silver_ore", "glimmering_gem"},
		Effect: Effect{
			Consume: []string{"silver_ore", "glimmering_gem"}, Grant: []string{"vault_key"},
			Gold: 10, Relationship: 20, StartQuest: "final_treasure",
			Note: "Sparks fly late into the night. Rogan hands you a key of silver and gemstone.",
		},
	},
	{
		Quest: "forge_key", From: world.QuestNotStarted, To: world.QuestStarted,
		NPC: "blacksmith", Keywords: []string{"key", "vault", "forge"},
		RequireDone: "retrieve_scroll",
		Effect:      Effect{Note: "'The vault under the ruins? I could forge its key, given silver ore and that gem of yours.'"},
	},

	// final_treasure (started automatically by forge_key)
	{
		Quest: "final_treasure", From: world.QuestStarted, To: world.QuestCompleted,
		TakeItem: "crown_of_theron",
		Effect: Effect{
			Gold: 100, CompleteGame: true,
			Note: "You lift the Crown of Theron from its plinth. The village will sing of this. THE END.",
		},
	},

	// lost_locket (hidden, independent)
	{
		Quest: "lost_locket", From: world.QuestStarted, To: world.QuestCompleted,
		NPC: "herbalist", RequireItems: []string{"silver_locket"},
		Effect: Effect{
			Consume: []string{"silver_locket"}, Grant: []string{"lucky_charm"},
			Gold: 15, Relationship: 20,
			Note: "Sera closes her hand around the locket and says nothing for a long while. 'Keep the charm. It was hers too.'",
		},
	},
	{
		Quest: "lost_locket", From: world.QuestNotStarted, To: world.QuestStarted,
		NPC: "herbalist", Keywords: []string{"locket", "lost", "sister"},
		Effect: Effect{Note: "'A silver locket, my sister's. I dropped it somewhere under the pines.'"},
	},
}

// Outcome reports what firing a trigger did.
type Outcome struct {
	Fired     bool
	Lines     []string
	Completed []string // quest keys completed this turn (autosave milestones)
}

// OnTalk evaluates talk-driven triggers for the given NPC and utterance.
// At most one trigger fires per turn; the first table match wins.
func OnTalk(w *world.World, npcKey, utterance string) Outcome {
	low := strings.ToLower(utterance)
	for i := range Triggers {
		t := &Triggers[i]
		if t.NPC != npcKey || t.TakeItem != "" {
			continue
		}
		if !matches(w, t, low) {
			continue
		}
		return fire(w, t, npcKey)
	}
	return Outcome{}
}

// OnTake evaluates take-driven triggers for an item just picked up.
func OnTake(w *world.World, itemKey string) Outcome {
	for i := range Triggers {
		t := &Triggers[i]
		if t.TakeItem != itemKey {
			continue
		}
		if !matches(w, t, "") {
			continue
		}
		return fire(w, t, "")
	}
	return Outcome{}
}

func matches(w *world.World, t *Trigger, utterance string) bool {
	if w.Player.QuestStage(t.Quest) != t.From {
		return false
	}
	if t.RequireDone != "" && w.Player.QuestStage(t.RequireDone) != world.QuestCompleted {
		return false
	}
	if t.RequireBoss != "" {
		loc := w.Locations[t.RequireBoss]
		if loc == nil || loc.Boss == nil || !loc.Boss.Defeated {
			return false
		}
	}
	for _, item := range t.RequireItems {
		if !w.Player.HasItem(item) {
			return false
		}
	}
	if len(t.Keywords) > 0 {
		hit := false
		for _, kw := range t.Keywords {
			if strings.Contains(utterance, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if t.OneShot != "" && w.Flag(t.OneShot) {
		return false
	}
	return true
}

func fire(w *world.World, t *Trigger, npcKey string) Outcome {
	out := Outcome{Fired: true}
	if t.OneShot != "" {
		w.SetFlag(t.OneShot)
	}
	if err := w.SetQuestStage(t.Quest, t.To); err != nil {
		return Outcome{}
	}

	eff := t.Effect
	for _, item := range eff.Consume {
		_ = w.ConsumeItem(item)
	}
	for _, item := range eff.Grant {
		w.GrantItem(item)
		out.Lines = append(out.Lines, fmt.Sprintf("You receive: %s.", world.ItemName(item)))
	}
	if eff.Gold > 0 {
		w.AddGold(eff.Gold)
		out.Lines = append(out.Lines, fmt.Sprintf("You receive %d gold.", eff.Gold))
	}
	if eff.MaxHP > 0 {
		w.RaiseMaxHP(eff.MaxHP)
		out.Lines = append(out.Lines, fmt.Sprintf("You feel hardier. Max HP +%d.", eff.MaxHP))
	}
	if eff.Relationship != 0 && npcKey != "" {
		if npc := w.NPCs[npcKey]; npc != nil {
			if notice := npc.AddPoints(eff.Relationship); notice != "" {
				out.Lines = append(out.Lines, notice)
			}
		}
	}
	if eff.Note != "" {
		out.Lines = append([]string{eff.Note}, out.Lines...)
	}

	switch {
	case t.To == world.QuestCompleted && t.From != world.QuestCompleted:
		out.Completed = append(out.Completed, t.Quest)
		out.Lines = append(out.Lines, fmt.Sprintf("(Quest complete: %s)", Name(t.Quest)))
	case t.To == world.QuestStarted && t.From == world.QuestNotStarted:
		out.Lines = append(out.Lines, fmt.Sprintf("(New quest started: %s)", Name(t.Quest)))
	}

	if eff.StartQuest != "" {
		if w.Player.QuestStage(eff.StartQuest) == world.QuestNotStarted {
			_ = w.SetQuestStage(eff.StartQuest, world.QuestStarted)
			out.Lines = append(out.Lines, fmt.Sprintf("(New quest started: %s)", Name(eff.StartQuest)))
		}
	}
	if eff.CompleteGame {
		w.GameCompleted = true
	}
	return out
}

// Name returns a quest's display name.
func Name(key string) string {
	for _, d := range Defs {
		if d.Key == key {
			return d.Name
		}
	}
	return world.DisplayName(key)
}
