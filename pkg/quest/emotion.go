package quest

import (
	"strings"

	"github.com/jwebster45206/village-of-theron/pkg/world"
)

// emotionRules maps utterance keywords to the emotional state they push
// an NPC toward. Absent a hit, the current state stays.
var emotionRules = []struct {
	keywords []string
	emotion  world.Emotion
}{
	{[]string{"thanks", "thank", "friend"}, world.EmotionHappy},
	{[]string{"treasure", "gem", "gold"}, world.EmotionExcited},
	{[]string{"danger", "beast", "monster"}, world.EmotionWorried},
	{[]string{"fool", "stupid", "useless"}, world.EmotionAngry},
	{[]string{"sick", "death", "sad"}, world.EmotionSad},
}

// UpdateEmotion drifts an NPC's emotional state from utterance keywords.
func UpdateEmotion(npc *world.NPC, utterance string) {
	low := strings.ToLower(utterance)
	for _, rule := range emotionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(low, kw) {
				npc.Emotion = rule.emotion
				return
			}
		}
	}
}

// repeatThreshold is how many mentions make a topic feel worn.
const repeatThreshold = 3

// NoteTopics counts conversation topics (words of length >= 4) and
// returns a flavor note when a topic has come up repeatedly.
func NoteTopics(npc *world.NPC, utterance string) string {
	note := ""
	for _, word := range strings.Fields(strings.ToLower(utterance)) {
		word = strings.Trim(word, ".,!?'\";:")
		if len(word) < 4 {
			continue
		}
		if npc.NoteTopic(word) >= repeatThreshold && note == "" {
			note = "The player keeps bringing up \"" + word + "\" again."
		}
	}
	return note
}
