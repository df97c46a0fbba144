package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

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
	log := logger.Setup(cfg, os.Stderr)
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

	fmt.Println(session.Welcome())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye.")
			return
		}
		out, quit := session.Handle(ctx, scanner.Text())
		fmt.Println(out)
		if quit {
			return
		}
	}
}
