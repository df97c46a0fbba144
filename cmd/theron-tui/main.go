package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/village-of-theron/internal/audio"
	"github.com/jwebster45206/village-of-theron/internal/config"
	"github.com/jwebster45206/village-of-theron/internal/logger"
	"github.com/jwebster45206/village-of-theron/internal/services"
	"github.com/jwebster45206/village-of-theron/internal/storage"
	"github.com/jwebster45206/village-of-theron/pkg/combat"
	"github.com/jwebster45206/village-of-theron/pkg/game"
	"github.com/jwebster45206/village-of-theron/pkg/world"
)

func main() {
	cfg := config.Load()

	logFile, err := os.OpenFile("theron-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logFile.Close() }()
	log := logger.Setup(cfg, logFile)

	ctx := context.Background()
	provider, closeProvider := services.ResolveProvider(ctx, cfg, log)
	defer closeProvider()

	var store storage.Store
	if cfg.Storage == "redis" {
		rs := storage.NewRedisStore(cfg.RedisURL, log)
		if err := rs.Ping(ctx); err != nil {
			log.Warn("redis unavailable, falling back to file saves", "error", err)
			store = storage.NewFileStore(cfg.SavesDir, log)
		} else {
			store = rs
		}
	} else {
		store = storage.NewFileStore(cfg.SavesDir, log)
	}
	defer func() { _ = store.Close() }()

	music := audio.NewManager(cfg.MusicConfig, log)
	rng := combat.NewRNG(time.Now().UnixNano())
	session := game.NewSession(world.Build(), provider, store, music, rng, log)

	// Single-slot handoff: the UI goroutine produces one line at a
	// time; the engine goroutine is the sole consumer and the only
	// code that touches the World.
	inputCh := make(chan string, 1)

	p := tea.NewProgram(NewGameUI(inputCh, session.Welcome()), tea.WithAltScreen(), tea.WithMouseCellMotion())

	go func() {
		for line := range inputCh {
			out, quit := session.Handle(ctx, line)
			p.Send(engineReplyMsg{text: out, quit: quit})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running UI: %v\n", err)
		os.Exit(1)
	}
}
