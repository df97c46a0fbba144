// Package command converts one line of player input into a structured
// action. Intentionally dumb: an ordered set of prefix and keyword
// matchers, no NLP.
package command

import "strings"

// Kind identifies a parsed action.
type Kind string

const (
	KindAttack        Kind = "attack"
	KindDefend        Kind = "defend"
	KindFlee          Kind = "flee"
	KindGo            Kind = "go"
	KindBack          Kind = "back"
	KindLook          Kind = "look"
	KindInventory     Kind = "inventory"
	KindStats         Kind = "stats"
	KindQuests        Kind = "quests"
	KindMap           Kind = "map"
	KindAchievements  Kind = "achievements"
	KindRelationships Kind = "relationships"
	KindTake          Kind = "take"
	KindDrop          Kind = "drop"
	KindEquip         Kind = "equip"
	KindUnequip       Kind = "unequip"
	KindUse           Kind = "use"
	KindShop          Kind = "shop"
	KindBuy           Kind = "buy"
	KindTalk          Kind = "talk"
	KindAsk           Kind = "ask"
	KindSave          Kind = "save"
	KindLoad          Kind = "load"
	KindSaves         Kind = "saves"
	KindMusic         Kind = "music"
	KindVolume        Kind = "volume"
	KindHelp          Kind = "help"
	KindQuit          Kind = "quit"
	KindRestart       Kind = "restart"

	// KindCombatOnly rejects a non-combat command issued during combat.
	KindCombatOnly Kind = "combat_only"
	// KindGameOver rejects a command issued after the run has ended.
	KindGameOver Kind = "game_over"
	// KindUnknown is the stable fallback; not an error condition.
	KindUnknown Kind = "unknown"
	// KindEmpty is a blank line.
	KindEmpty Kind = "empty"
)

// Action is the structured result of parsing one input line.
type Action struct {
	Kind Kind
	Arg  string // destination, item, slot, save name, volume
	NPC  string // talk/ask target
	Text string // utterance or topic
}

// Mode captures the interpreter state that gates the grammar.
type Mode struct {
	InCombat bool
	GameOver bool
	NPCs     []string // NPC keys present at the player's location
}

// underscore joins multi-word arguments into a single key,
// e.g. "forest path" -> "forest_path".
func underscore(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), "_")
}

// Parse resolves a raw line to an Action. Rules are evaluated in fixed
// priority order; the first match wins. NPC-name-first utterances are
// tried only after every verb form fails.
func Parse(raw string, mode Mode) Action {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Action{Kind: KindEmpty}
	}
	low := strings.ToLower(s)
	fields := strings.Fields(low)

	if mode.GameOver {
		switch fields[0] {
		case "restart":
			return Action{Kind: KindRestart}
		case "load":
			return Action{Kind: KindLoad, Arg: underscore(after(low, "load"))}
		case "saves":
			return Action{Kind: KindSaves}
		case "quit", "exit":
			return Action{Kind: KindQuit}
		case "help", "h", "?":
			return Action{Kind: KindHelp}
		}
		return Action{Kind: KindGameOver}
	}

	if mode.InCombat {
		switch low {
		case "attack":
			return Action{Kind: KindAttack}
		case "defend":
			return Action{Kind: KindDefend}
		case "flee":
			return Action{Kind: KindFlee}
		case "look", "l":
			return Action{Kind: KindLook}
		case "inventory", "inv", "i":
			return Action{Kind: KindInventory}
		case "stats":
			return Action{Kind: KindStats}
		case "help", "h", "?":
			return Action{Kind: KindHelp}
		}
		return Action{Kind: KindCombatOnly}
	}

	// Movement. "back" must be checked before the prefix matchers or
	// "go back" would parse as a destination.
	if low == "back" || low == "go back" {
		return Action{Kind: KindBack}
	}
	for _, verb := range []string{"go ", "move ", "walk "} {
		if strings.HasPrefix(low, verb) {
			return Action{Kind: KindGo, Arg: underscore(low[len(verb):])}
		}
	}

	// Informational.
	switch low {
	case "look", "l":
		return Action{Kind: KindLook}
	case "inventory", "inv", "i":
		return Action{Kind: KindInventory}
	case "stats":
		return Action{Kind: KindStats}
	case "quests":
		return Action{Kind: KindQuests}
	case "map":
		return Action{Kind: KindMap}
	case "achievements":
		return Action{Kind: KindAchievements}
	case "relationships":
		return Action{Kind: KindRelationships}
	}

	// Inventory mutation.
	for verb, kind := range map[string]Kind{
		"take ":    KindTake,
		"get ":     KindTake,
		"drop ":    KindDrop,
		"equip ":   KindEquip,
		"unequip ": KindUnequip,
		"use ":     KindUse,
	} {
		if strings.HasPrefix(low, verb) {
			return Action{Kind: kind, Arg: underscore(low[len(verb):])}
		}
	}

	// Commerce.
	if low == "shop" {
		return Action{Kind: KindShop}
	}
	if strings.HasPrefix(low, "buy ") {
		return Action{Kind: KindBuy, Arg: underscore(low[4:])}
	}

	// Social. "talk to <npc> [text]" enters conversation mode;
	// "ask <npc> about <topic>" is a one-shot question.
	if strings.HasPrefix(low, "talk to ") || strings.HasPrefix(low, "talk ") {
		rest := strings.TrimPrefix(low, "talk ")
		rest = strings.TrimPrefix(rest, "to ")
		parts := strings.SplitN(rest, " ", 2)
		act := Action{Kind: KindTalk, NPC: parts[0]}
		if len(parts) == 2 {
			act.Text = strings.TrimSpace(parts[1])
		}
		return act
	}
	if strings.HasPrefix(low, "ask ") {
		rest := strings.TrimPrefix(low, "ask ")
		if npc, topic, ok := strings.Cut(rest, " about "); ok && strings.TrimSpace(topic) != "" {
			return Action{Kind: KindAsk, NPC: underscore(npc), Text: strings.TrimSpace(topic)}
		}
		return Action{Kind: KindAsk}
	}

	// Persistence.
	if low == "save" || strings.HasPrefix(low, "save ") {
		return Action{Kind: KindSave, Arg: underscore(after(low, "save"))}
	}
	if strings.HasPrefix(low, "load ") {
		return Action{Kind: KindLoad, Arg: underscore(low[5:])}
	}
	if low == "saves" {
		return Action{Kind: KindSaves}
	}

	// Meta.
	if low == "music" {
		return Action{Kind: KindMusic}
	}
	if strings.HasPrefix(low, "volume ") {
		return Action{Kind: KindVolume, Arg: strings.TrimSpace(low[7:])}
	}
	switch low {
	case "help", "h", "?":
		return Action{Kind: KindHelp}
	case "quit", "exit":
		return Action{Kind: KindQuit}
	case "restart":
		return Action{Kind: KindRestart}
	}

	// NPC-name-first utterance, only after all verb forms failed.
	first := fields[0]
	for _, key := range mode.NPCs {
		if key == first {
			return Action{Kind: KindTalk, NPC: first, Text: strings.TrimSpace(s[len(first):])}
		}
	}

	return Action{Kind: KindUnknown}
}

// after returns the remainder of s past the leading word, or "".
func after(s, word string) string {
	rest := strings.TrimPrefix(s, word)
	return strings.TrimSpace(rest)
}
