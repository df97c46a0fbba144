package services

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadAnthropicKey resolves the Anthropic credential in fixed priority
// order: ANTHROPIC_API_KEY env var, ./anthropic.key, then
// ~/.anthropic/anthropic.key. Absence is not fatal; an empty key means
// dialogue degrades to the offline provider.
func LoadAnthropicKey() string {
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		return strings.TrimSpace(k)
	}
	if k := readKeyFile("anthropic.key"); k != "" {
		return k
	}
	if home, err := os.UserHomeDir(); err == nil {
		return readKeyFile(filepath.Join(home, ".anthropic", "anthropic.key"))
	}
	return ""
}

// LoadGeminiKey resolves the Gemini credential from the environment.
func LoadGeminiKey() string {
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
}

func readKeyFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
