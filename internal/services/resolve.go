package services

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/village-of-theron/internal/config"
	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
)

// ResolveProvider selects the configured dialogue vendor, degrading to
// the offline provider when no credential is available. The returned
// provider is always wrapped so a remote failure becomes a fallback
// line instead of an error. The cleanup func releases any vendor
// client and is always safe to call.
func ResolveProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (dialogue.Provider, func()) {
	noop := func() {}
	switch cfg.Provider {
	case "anthropic":
		key := LoadAnthropicKey()
		if key == "" {
			logger.Info("no anthropic credential found, dialogue runs offline")
			return NewOfflineProvider(), noop
		}
		return WithFallback(NewAnthropicProvider(key, cfg.ClaudeModel, logger), logger), noop

	case "gemini":
		key := LoadGeminiKey()
		if key == "" {
			logger.Info("no gemini credential found, dialogue runs offline")
			return NewOfflineProvider(), noop
		}
		p, err := NewGeminiProvider(ctx, key, cfg.GeminiModel, logger)
		if err != nil {
			logger.Warn("failed to create gemini provider, dialogue runs offline", "error", err)
			return NewOfflineProvider(), noop
		}
		return WithFallback(p, logger), p.Close

	default:
		return NewOfflineProvider(), noop
	}
}
