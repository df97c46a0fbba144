// Package dialogue defines the contract between the engine and the
// NPC speech provider. Providers produce display text only; they never
// mutate game state, and a failed provider must never reach the player
// as a technical error.
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordBudget caps reply length; longer replies are truncated word-wise.
const WordBudget = 60

// Request carries everything a provider may use to produce one line of
// in-character speech.
type Request struct {
	NPCName      string
	Personality  string
	LocationKey  string
	LocationDesc string
	Memory       []string // most recent entries only
	Utterance    string
	Emotion      string
	TopicNote    string // repeat-topic flavoring, may be empty
}

// Provider produces a single line of in-character NPC speech.
type Provider interface {
	// Reply is a blocking, synchronous round trip. No retries; callers
	// fall through to an offline line on the first error.
	Reply(ctx context.Context, req Request) (string, error)
}

// TruncateWords limits s to at most n words.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.TrimSpace(s)
	}
	return strings.Join(words[:n], " ") + "…"
}

// OfflineLine is the deterministic keyless reply, derived only from the
// utterance and NPC name.
func OfflineLine(npcName, utterance string) string {
	u := strings.TrimSpace(utterance)
	if u != "" {
		r, size := utf8.DecodeRuneInString(u)
		u = string(unicode.ToUpper(r)) + u[size:]
	}
	return fmt.Sprintf("%s shrugs. '%s… right. Keep your wits.'", npcName, u)
}

// NoReplyLine covers a provider that returned empty text.
func NoReplyLine(npcName string) string {
	return fmt.Sprintf("%s nods. 'Fair enough.'", npcName)
}

// ErrorLine covers a provider that failed outright.
func ErrorLine(npcName string) string {
	return fmt.Sprintf("%s frowns. 'Can't talk right now.'", npcName)
}

// CombatLine is shown when the player tries to chat mid-fight.
func CombatLine(npcName string) string {
	return fmt.Sprintf("%s shouts over the clash, 'Focus on the fight!'", npcName)
}

// Persona renders the request's character context block.
func (r Request) Persona() string {
	recent := "None"
	if len(r.Memory) > 0 {
		recent = strings.Join(r.Memory, " | ")
	}
	persona := fmt.Sprintf("Character: %s\nPersonality: %s\nCurrent mood: %s\nLocation: %s (%s)\nRecent memories: %s",
		r.NPCName, r.Personality, r.Emotion, r.LocationKey, r.LocationDesc, recent)
	if r.TopicNote != "" {
		persona += "\n" + r.TopicNote
	}
	return persona
}

// SystemPrompt is the shared instruction set for remote vendors.
const SystemPrompt = "You are an NPC in a text adventure. Stay in character. " +
	"Reply in 60 words or fewer. Do NOT change game state, give items, or move the player."
