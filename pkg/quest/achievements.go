package quest

import "github.com/jwebster45206/village-of-theron/pkg/world"

// Achievement is a boolean unlock with a monotonic predicate over world
// state. Once unlocked, a key is never removed.
type Achievement struct {
	Key         string
	Name        string
	Description string
	Unlocked    func(w *world.World) bool
}

// Achievements is the fixed catalog, checked after any state-changing
// action.
var Achievements = []Achievement{
	{
		Key: "explorer", Name: "Explorer",
		Description: "Visit 5 different areas.",
		Unlocked: func(w *world.World) bool {
			return len(w.Player.Explored) >= 5
		},
	},
	{
		Key: "gold_hoarder", Name: "Gold Hoarder",
		Description: "Hold 100 gold at once.",
		Unlocked: func(w *world.World) bool {
			return w.Player.Gold >= 100
		},
	},
	{
		Key: "helping_hand", Name: "Helping Hand",
		Description: "Complete 3 quests.",
		Unlocked: func(w *world.World) bool {
			n := 0
			for _, s := range w.Player.Quests {
				if s == world.QuestCompleted {
					n++
				}
			}
			return n >= 3
		},
	},
	{
		Key: "friend_of_theron", Name: "Friend of Theron",
		Description: "Talk with 3 different villagers.",
		Unlocked: func(w *world.World) bool {
			return len(w.Player.TalkedTo) >= 3
		},
	},
	{
		Key: "beast_slayer", Name: "Beast Slayer",
		Description: "Clear the hidden cave.",
		Unlocked: func(w *world.World) bool {
			return w.Player.QuestStage("clear_cave") == world.QuestCompleted
		},
	},
	{
		Key: "hero_of_theron", Name: "Hero of Theron",
		Description: "Claim the Crown of Theron.",
		Unlocked: func(w *world.World) bool {
			return w.Player.QuestStage("final_treasure") == world.QuestCompleted
		},
	},
}

// CheckAchievements unlocks any newly satisfied achievements and returns
// their notices. Re-checking unlocked achievements is a no-op.
func CheckAchievements(w *world.World) []string {
	var lines []string
	for _, a := range Achievements {
		if w.Player.Achievements[a.Key] {
			continue
		}
		if !a.Unlocked(w) {
			continue
		}
		if w.Player.Achievements == nil {
			w.Player.Achievements = make(map[string]bool)
		}
		w.Player.Achievements[a.Key] = true
		lines = append(lines, "Achievement unlocked: "+a.Name+"!")
	}
	return lines
}
