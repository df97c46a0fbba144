package services

import (
	"context"

	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
)

// OfflineProvider produces deterministic fallback speech when no
// credential is available. It never fails.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (o *OfflineProvider) Reply(_ context.Context, req dialogue.Request) (string, error) {
	return dialogue.OfflineLine(req.NPCName, req.Utterance), nil
}
