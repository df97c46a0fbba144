package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/village-of-theron/internal/storage"
)

const defaultSlot = "save"

func (s *Session) saveGame(ctx context.Context, name string) string {
	if name == "" {
		name = defaultSlot
	}
	if err := s.store.Save(ctx, name, storage.NewSnapshot(s.World)); err != nil {
		s.logger.Error("save failed", "slot", name, "error", err)
		return fmt.Sprintf("Failed to save '%s'.", name)
	}
	return fmt.Sprintf("Game saved to '%s'.", storage.SanitizeName(name))
}

func (s *Session) loadGame(ctx context.Context, name string) string {
	if name == "" {
		return "Try: load <name> (see 'saves')."
	}
	snap, err := s.store.Load(ctx, name)
	if err != nil {
		s.logger.Error("load failed", "slot", name, "error", err)
		return fmt.Sprintf("Failed to load '%s'. The save may be corrupt.", name)
	}
	if snap == nil {
		return fmt.Sprintf("No save named '%s'.", name)
	}
	if err := snap.Validate(); err != nil {
		s.logger.Error("snapshot invalid", "slot", name, "error", err)
		return fmt.Sprintf("Failed to load '%s'. The save may be corrupt.", name)
	}
	s.World = snap.World()
	s.talkingTo = ""
	s.music.OnLocation(s.World.Player.Location)
	return fmt.Sprintf("Loaded '%s'.\n\n%s", storage.SanitizeName(name), s.describeLocation())
}

func (s *Session) listSaves(ctx context.Context) string {
	infos, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("listing saves failed", "error", err)
		return "Failed to list saves."
	}
	if len(infos) == 0 {
		return "No saves yet."
	}
	lines := []string{"Saves:"}
	for _, info := range infos {
		lines = append(lines, fmt.Sprintf("  %s - %s", info.Name, info.SavedAt.Format("2006-01-02 15:04")))
	}
	return strings.Join(lines, "\n")
}
