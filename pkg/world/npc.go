package world

import "fmt"

// Emotion is an NPC's current emotional state.
type Emotion string

const (
	EmotionCalm    Emotion = "calm"
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionAngry   Emotion = "angry"
	EmotionExcited Emotion = "excited"
	EmotionWorried Emotion = "worried"
)

// Tier is the derived relationship level. It is a pure function of
// relationship points and is never stored independently.
type Tier string

const (
	TierNeutral  Tier = "neutral"
	TierFriendly Tier = "friendly"
	TierAlly     Tier = "ally"
)

// TierFor maps relationship points to a tier.
func TierFor(points int) Tier {
	switch {
	case points >= 76:
		return TierAlly
	case points >= 26:
		return TierFriendly
	default:
		return TierNeutral
	}
}

// memoryWindow is how many recent memory entries feed dialogue context.
const memoryWindow = 3

// NPC is a non-player character. Memory is append-only; only the most
// recent entries are consulted for dialogue context.
type NPC struct {
	Key                string         `json:"key"`
	Name               string         `json:"name"`
	Personality        string         `json:"personality"`
	Memory             []string       `json:"memory,omitempty"`
	RelationshipPoints int            `json:"relationship_points"`
	Emotion            Emotion        `json:"emotional_state"`
	Topics             map[string]int `json:"conversation_topics,omitempty"`
	Shop               map[string]int `json:"shop,omitempty"` // item key -> price
}

// Tier returns the NPC's current relationship tier.
func (n *NPC) Tier() Tier {
	return TierFor(n.RelationshipPoints)
}

// Remember appends an entry to the NPC's memory log.
func (n *NPC) Remember(entry string) {
	n.Memory = append(n.Memory, entry)
}

// RecentMemory returns the last few memory entries for dialogue context.
func (n *NPC) RecentMemory() []string {
	if len(n.Memory) <= memoryWindow {
		return n.Memory
	}
	return n.Memory[len(n.Memory)-memoryWindow:]
}

// AddPoints adjusts relationship points (floored at zero) and returns a
// one-time notice when the change crosses a tier boundary, or "".
func (n *NPC) AddPoints(delta int) string {
	before := n.Tier()
	n.RelationshipPoints += delta
	if n.RelationshipPoints < 0 {
		n.RelationshipPoints = 0
	}
	after := n.Tier()
	if after == before {
		return ""
	}
	return fmt.Sprintf("%s now considers you %s %s.", n.Name, tierArticle(after), after)
}

func tierArticle(t Tier) string {
	if t == TierAlly {
		return "an"
	}
	return "a"
}

// NoteTopic counts an uttered word and reports how many times the NPC
// has heard it, for repeat-topic flavoring.
func (n *NPC) NoteTopic(word string) int {
	if n.Topics == nil {
		n.Topics = make(map[string]int)
	}
	n.Topics[word]++
	return n.Topics[word]
}
