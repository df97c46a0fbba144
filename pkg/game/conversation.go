package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
	"github.com/jwebster45206/village-of-theron/pkg/quest"
)

// exitPhrases end conversation mode.
var exitPhrases = map[string]bool{
	"exit": true, "quit": true, "leave": true, "bye": true, "goodbye": true,
}

// startTalk enters conversation mode with an NPC. If text is given it
// is treated as the first utterance.
func (s *Session) startTalk(ctx context.Context, npcKey, text string) string {
	w := s.World
	if w.InCombat() {
		return "No time to chat. You're in a fight!"
	}
	if !w.CurrentLocation().HasNPC(npcKey) {
		return fmt.Sprintf("There's no one named '%s' here.", npcKey)
	}
	npc := w.NPCs[npcKey]
	s.talkingTo = npcKey

	out := fmt.Sprintf("You're speaking with %s. (Say 'bye' to end the conversation.)", npc.Name)
	if strings.TrimSpace(text) != "" {
		out += "\n" + s.converse(ctx, npcKey, text)
	}
	return out
}

// oneShotTalk asks an NPC a question without entering conversation mode.
func (s *Session) oneShotTalk(ctx context.Context, npcKey, text string) string {
	w := s.World
	if w.InCombat() {
		return "No time to chat. You're in a fight!"
	}
	if !w.CurrentLocation().HasNPC(npcKey) {
		return fmt.Sprintf("There's no one named '%s' here.", npcKey)
	}
	return s.converse(ctx, npcKey, text)
}

// handleConversation routes an input line while conversation mode is
// active. Exit phrases and an external combat interrupt both leave the
// mode; anything else is dialogue directed at the NPC.
func (s *Session) handleConversation(ctx context.Context, raw string) string {
	npcKey := s.talkingTo
	npc := s.World.NPCs[npcKey]

	line := strings.ToLower(strings.TrimSpace(raw))
	if exitPhrases[line] {
		s.talkingTo = ""
		return fmt.Sprintf("%s nods farewell.", npc.Name)
	}
	if s.World.InCombat() {
		s.talkingTo = ""
		return dialogue.CombatLine(npc.Name)
	}
	if line == "" {
		return fmt.Sprintf("%s waits for you to speak.", npc.Name)
	}
	return s.finishTurn(s.converse(ctx, npcKey, raw))
}

// converse runs one dialogue turn: quest triggers first, and only if
// none fire does the generic provider produce flavor text. The provider
// output is display-only; it never mutates state.
func (s *Session) converse(ctx context.Context, npcKey, text string) string {
	w := s.World
	npc := w.NPCs[npcKey]
	text = strings.TrimSpace(text)
	if text == "" {
		text = "Hello."
	}

	npc.Remember(fmt.Sprintf("Player said: %s at %s", text, w.Player.Location))
	w.MarkTalked(npcKey)
	quest.UpdateEmotion(npc, text)
	topicNote := quest.NoteTopics(npc, text)

	outcome := quest.OnTalk(w, npcKey, text)
	if outcome.Fired {
		out := strings.Join(outcome.Lines, "\n")
		return s.afterQuestMilestones(ctx, out, outcome.Completed)
	}

	// Ordinary conversation: small relationship nudge.
	var lines []string
	if notice := npc.AddPoints(2); notice != "" {
		lines = append(lines, notice)
	}

	loc := w.CurrentLocation()
	reply, err := s.provider.Reply(ctx, dialogue.Request{
		NPCName:      npc.Name,
		Personality:  npc.Personality,
		LocationKey:  loc.Key,
		LocationDesc: loc.Description,
		Memory:       npc.RecentMemory(),
		Utterance:    text,
		Emotion:      string(npc.Emotion),
		TopicNote:    topicNote,
	})
	if err != nil {
		// Providers are wrapped to not fail, but hold the line anyway.
		s.logger.Warn("dialogue provider error", "npc", npcKey, "error", err)
		reply = dialogue.ErrorLine(npc.Name)
	}
	lines = append([]string{reply}, lines...)
	return strings.Join(lines, "\n")
}
