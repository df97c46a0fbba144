package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/village-of-theron/internal/config"
)

func TestResolveProvider_OfflineDefault(t *testing.T) {
	cfg := &config.Config{Provider: "offline"}
	p, closeProvider := ResolveProvider(context.Background(), cfg, testLogger())
	require.NotNil(t, p)
	require.NotNil(t, closeProvider)
	assert.IsType(t, &OfflineProvider{}, p)
	closeProvider()
}

func TestResolveProvider_GeminiWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg := &config.Config{Provider: "gemini", GeminiModel: "gemini-2.5-flash"}
	p, closeProvider := ResolveProvider(context.Background(), cfg, testLogger())
	require.NotNil(t, p)
	assert.IsType(t, &OfflineProvider{}, p)
	// Cleanup must be callable even when no client was created.
	closeProvider()
}
