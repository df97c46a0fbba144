package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
)

// GeminiProvider implements dialogue.Provider against the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(dialogue.SystemPrompt)},
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiProvider) Close() {
	g.client.Close()
}

// Reply generates one line of NPC speech.
func (g *GeminiProvider) Reply(ctx context.Context, req dialogue.Request) (string, error) {
	prompt := req.Persona() + "\n\nPlayer says: " + req.Utterance

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return dialogue.NoReplyLine(req.NPCName), nil
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return dialogue.NoReplyLine(req.NPCName), nil
	}
	return dialogue.TruncateWords(out, dialogue.WordBudget), nil
}
