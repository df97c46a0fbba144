package services

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
)

// FallbackProvider wraps another provider and converts any failure into
// a fixed-shape in-fiction line. The error is logged, never propagated:
// a single failed attempt falls through immediately, with no retry.
type FallbackProvider struct {
	inner  dialogue.Provider
	logger *slog.Logger
}

func WithFallback(inner dialogue.Provider, logger *slog.Logger) *FallbackProvider {
	return &FallbackProvider{inner: inner, logger: logger}
}

func (f *FallbackProvider) Reply(ctx context.Context, req dialogue.Request) (string, error) {
	text, err := f.inner.Reply(ctx, req)
	if err != nil {
		f.logger.Warn("dialogue provider failed, using fallback line",
			"npc", req.NPCName, "error", err)
		return dialogue.ErrorLine(req.NPCName), nil
	}
	return text, nil
}
