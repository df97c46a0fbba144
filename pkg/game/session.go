// Package game wires the world model, parser, combat resolver, quest
// engine, dialogue provider, and persistence into one interactive
// session. A Session owns exactly one live World and is driven by a
// single-threaded read-eval loop.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/village-of-theron/internal/audio"
	"github.com/jwebster45206/village-of-theron/internal/storage"
	"github.com/jwebster45206/village-of-theron/pkg/combat"
	"github.com/jwebster45206/village-of-theron/pkg/command"
	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
	"github.com/jwebster45206/village-of-theron/pkg/quest"
	"github.com/jwebster45206/village-of-theron/pkg/world"
)

const unknownReply = "I don't understand. Type 'help' for commands."

// Session holds one World and the collaborator handles it plays
// against. Collaborators are passed in explicitly; there is no ambient
// state.
type Session struct {
	ID    uuid.UUID
	World *world.World

	provider dialogue.Provider
	store    storage.Store
	music    *audio.Manager
	resolver *combat.Resolver
	logger   *slog.Logger

	// talkingTo is the NPC key of the active conversation, or "".
	talkingTo string
}

// NewSession creates a session around a fresh or loaded world.
func NewSession(w *world.World, provider dialogue.Provider, store storage.Store, music *audio.Manager, rng *combat.RNG, logger *slog.Logger) *Session {
	return &Session{
		ID:       uuid.New(),
		World:    w,
		provider: provider,
		store:    store,
		music:    music,
		resolver: combat.NewResolver(rng),
		logger:   logger,
	}
}

// Welcome returns the opening text plus the starting location.
func (s *Session) Welcome() string {
	s.music.OnLocation(s.World.Player.Location)
	return "Welcome to the Village of Theron.\n" +
		"Type 'help' for commands. Type 'quit' to exit.\n\n" +
		s.describeLocation()
}

// Handle processes one line of player input and returns the response
// text plus whether the session should end.
func (s *Session) Handle(ctx context.Context, raw string) (string, bool) {
	if s.talkingTo != "" {
		return s.handleConversation(ctx, raw), false
	}

	mode := command.Mode{
		InCombat: s.World.InCombat(),
		GameOver: s.World.GameOver,
		NPCs:     s.World.CurrentLocation().NPCs,
	}
	act := command.Parse(raw, mode)

	out, quit := s.dispatch(ctx, act)
	if quit {
		return out, true
	}
	return s.finishTurn(out), false
}

func (s *Session) dispatch(ctx context.Context, act command.Action) (string, bool) {
	switch act.Kind {
	case command.KindEmpty:
		return "Say or do something.", false
	case command.KindUnknown:
		return unknownReply, false
	case command.KindCombatOnly:
		return "You're in combat! Try: attack, defend, or flee.", false
	case command.KindGameOver:
		return "You have fallen. Try: restart, load <name>, saves, or quit.", false

	case command.KindAttack:
		return s.renderCombat(ctx, s.resolver.Attack(s.World)), false
	case command.KindDefend:
		return s.renderCombat(ctx, s.resolver.Defend(s.World)), false
	case command.KindFlee:
		return s.renderFlee(ctx, s.resolver.Flee(s.World)), false

	case command.KindGo:
		return s.move(ctx, act.Arg), false
	case command.KindBack:
		prev := s.World.Player.PreviousLocation
		if prev == "" {
			return "You haven't been anywhere else yet.", false
		}
		return s.move(ctx, prev), false

	case command.KindLook:
		return s.describeLocation(), false
	case command.KindInventory:
		if s.World.InCombat() {
			return s.showStats(), false
		}
		return s.showInventory(), false
	case command.KindStats:
		return s.showStats(), false
	case command.KindQuests:
		return s.showQuests(), false
	case command.KindMap:
		return s.showMap(), false
	case command.KindAchievements:
		return s.showAchievements(), false
	case command.KindRelationships:
		return s.showRelationships(), false

	case command.KindTake:
		return s.takeItem(ctx, act.Arg), false
	case command.KindDrop:
		return s.dropItem(act.Arg), false
	case command.KindEquip:
		return s.equipItem(act.Arg), false
	case command.KindUnequip:
		return s.unequipItem(act.Arg), false
	case command.KindUse:
		return s.useItem(act.Arg), false

	case command.KindShop:
		return s.showShop(), false
	case command.KindBuy:
		return s.buyItem(act.Arg), false

	case command.KindTalk:
		return s.startTalk(ctx, act.NPC, act.Text), false
	case command.KindAsk:
		if act.NPC == "" {
			return "Try: ask <npc> about <topic>.", false
		}
		return s.oneShotTalk(ctx, act.NPC, "Tell me about "+act.Text+"."), false

	case command.KindSave:
		return s.saveGame(ctx, act.Arg), false
	case command.KindLoad:
		return s.loadGame(ctx, act.Arg), false
	case command.KindSaves:
		return s.listSaves(ctx), false

	case command.KindMusic:
		return s.music.Toggle(), false
	case command.KindVolume:
		v, err := strconv.Atoi(act.Arg)
		if err != nil {
			return "Try: volume <0-100>.", false
		}
		return s.music.SetVolume(v), false

	case command.KindHelp:
		return s.helpText(), false
	case command.KindQuit:
		return "Goodbye.", true
	case command.KindRestart:
		return s.restart(), false
	}
	return unknownReply, false
}

// finishTurn applies end-of-turn bookkeeping: equipment hp regen on
// non-combat turns, then achievement checks.
func (s *Session) finishTurn(out string) string {
	w := s.World
	if !w.InCombat() && !w.GameOver {
		if regen := w.Player.Regen(); regen > 0 && w.Player.HP < w.Player.MaxHP {
			w.Heal(regen)
		}
	}
	if lines := quest.CheckAchievements(w); len(lines) > 0 {
		out += "\n" + strings.Join(lines, "\n")
	}
	return out
}

func (s *Session) move(ctx context.Context, dest string) string {
	w := s.World
	if err := w.MovePlayer(dest); err != nil {
		if err == world.ErrNoExit {
			return "You can't go that way."
		}
		// Gated exit: the error text is the in-fiction block message.
		return err.Error()
	}
	s.music.OnLocation(dest)
	return s.enterLocation(ctx)
}

// enterLocation runs first-entry events for the player's new location:
// one-shot item seeding, the scripted boss, or a random-encounter roll.
func (s *Session) enterLocation(ctx context.Context) string {
	w := s.World
	loc := w.CurrentLocation()

	if !loc.Seeded && len(loc.SeedItems) > 0 {
		loc.Items = append(loc.Items, loc.SeedItems...)
		loc.Seeded = true
	}
	wounded := loc.BossPending() && loc.Boss.RemainingHP > 0

	mon := s.resolver.RollEncounter(w, loc)
	loc.Visited = true

	out := s.describeLocation()
	if mon != nil {
		if wounded {
			out += fmt.Sprintf("\nThe %s is here, still bleeding from your last meeting! You are in combat.", mon.Name)
		} else {
			out += fmt.Sprintf("\nA %s lunges from the shadows! You are in combat.", mon.Name)
		}
		out += "\nCommands: attack, defend, flee"
	}
	return out
}

func (s *Session) renderCombat(_ context.Context, res combat.Result) string {
	out := strings.Join(res.Lines, "\n")
	if res.Defeat {
		out += "\nTry: restart, load <name>, or quit."
	}
	return out
}

func (s *Session) renderFlee(ctx context.Context, res combat.Result) string {
	out := strings.Join(res.Lines, "\n")
	if res.Fled {
		s.music.OnLocation(s.World.Player.Location)
		out += "\n" + s.enterLocation(ctx)
	}
	if res.Defeat {
		out += "\nTry: restart, load <name>, or quit."
	}
	return out
}

func (s *Session) restart() string {
	s.World = world.Build()
	s.talkingTo = ""
	s.logger.Info("session restarted", "session_id", s.ID)
	return "The world blurs, and you wake by the village well.\n\n" + s.Welcome()
}

// afterQuestMilestones appends outcome lines and fires milestone
// autosaves for any quests completed this turn.
func (s *Session) afterQuestMilestones(ctx context.Context, out string, completed []string) string {
	for _, q := range completed {
		slot := "auto_" + q
		if err := s.store.Save(ctx, slot, storage.NewSnapshot(s.World)); err != nil {
			s.logger.Warn("milestone autosave failed", "slot", slot, "error", err)
			continue
		}
		s.logger.Info("milestone autosave", "slot", slot)
	}
	return out
}
