package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
)

func TestFallbackProvider_PassesThrough(t *testing.T) {
	inner := NewMockProvider()
	inner.ReplyFunc = func(context.Context, dialogue.Request) (string, error) {
		return "All quiet in the square.", nil
	}
	provider := WithFallback(inner, testLogger())

	reply, err := provider.Reply(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "All quiet in the square.", reply)
	assert.Equal(t, 1, inner.CallCount())
}

func TestFallbackProvider_ConvertsErrorToLine(t *testing.T) {
	inner := NewMockProvider()
	inner.ReplyFunc = func(context.Context, dialogue.Request) (string, error) {
		return "", errors.New("connection refused")
	}
	provider := WithFallback(inner, testLogger())

	reply, err := provider.Reply(context.Background(), testRequest())
	require.NoError(t, err, "failures must not surface as errors")
	assert.Equal(t, "Rogan the Blacksmith frowns. 'Can't talk right now.'", reply)

	// No retry: one inner call per request.
	assert.Equal(t, 1, inner.CallCount())
}

func TestOfflineProvider(t *testing.T) {
	provider := NewOfflineProvider()

	req := testRequest()
	req.Utterance = "any news from the mine?"
	reply, err := provider.Reply(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Rogan the Blacksmith shrugs. 'Any news from the mine?… right. Keep your wits.'", reply)
}
