package dialogue

import (
	"strings"
	"testing"
)

func TestTruncateWords(t *testing.T) {
	if got := TruncateWords("short reply", 60); got != "short reply" {
		t.Errorf("Expected passthrough, got %q", got)
	}
	long := strings.Repeat("word ", 80)
	got := TruncateWords(long, 60)
	if n := len(strings.Fields(got)); n != 60 {
		t.Errorf("Expected 60 words, got %d", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected truncation marker, got %q", got)
	}
	if got := TruncateWords("  padded  ", 60); got != "padded" {
		t.Errorf("Expected trimmed passthrough, got %q", got)
	}
}

func TestFallbackLines(t *testing.T) {
	if got := OfflineLine("Sera the Herbalist", "where is the moonpetal?"); got != "Sera the Herbalist shrugs. 'Where is the moonpetal?… right. Keep your wits.'" {
		t.Errorf("Unexpected offline line: %q", got)
	}
	if got := OfflineLine("Sera the Herbalist", ""); got != "Sera the Herbalist shrugs. '… right. Keep your wits.'" {
		t.Errorf("Unexpected empty-utterance line: %q", got)
	}
	if got := OfflineLine("Sera the Herbalist", "élan, you say?"); got != "Sera the Herbalist shrugs. 'Élan, you say?… right. Keep your wits.'" {
		t.Errorf("Multibyte first rune mishandled: %q", got)
	}
	if got := OfflineLine("Sera the Herbalist", "真珠?"); !strings.Contains(got, "'真珠?…") {
		t.Errorf("Caseless first rune mishandled: %q", got)
	}
	if got := NoReplyLine("Elder Maren"); got != "Elder Maren nods. 'Fair enough.'" {
		t.Errorf("Unexpected no-reply line: %q", got)
	}
	if got := ErrorLine("Elder Maren"); got != "Elder Maren frowns. 'Can't talk right now.'" {
		t.Errorf("Unexpected error line: %q", got)
	}
	if got := CombatLine("Rogan"); !strings.Contains(got, "Focus on the fight!") {
		t.Errorf("Unexpected combat line: %q", got)
	}
}

func TestPersona(t *testing.T) {
	req := Request{
		NPCName:      "Tilda the Merchant",
		Personality:  "Cheerful trader.",
		LocationKey:  "general_store",
		LocationDesc: "Shelves crowded with jars.",
		Emotion:      "happy",
	}
	p := req.Persona()
	if !strings.Contains(p, "Character: Tilda the Merchant") {
		t.Errorf("Persona missing character line: %q", p)
	}
	if !strings.Contains(p, "Recent memories: None") {
		t.Errorf("Empty memory should render as None: %q", p)
	}

	req.Memory = []string{"Opened the shutters.", "Sold a potion."}
	req.TopicNote = "The player keeps bringing up \"potion\" again."
	p = req.Persona()
	if !strings.Contains(p, "Opened the shutters. | Sold a potion.") {
		t.Errorf("Persona missing joined memory: %q", p)
	}
	if !strings.Contains(p, "keeps bringing up") {
		t.Errorf("Persona missing topic note: %q", p)
	}
}
