package audio

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestManager_EmbeddedPlaylist(t *testing.T) {
	m := NewManager("", testLogger())

	m.OnLocation("village_square")
	if got := m.Current(); got != "village_theme.ogg" {
		t.Errorf("Expected village theme, got %q", got)
	}
	m.OnLocation("hidden_cave")
	if got := m.Current(); got != "drips_and_echoes.ogg" {
		t.Errorf("Expected cave track, got %q", got)
	}
	// Unknown locations fall back to the default track.
	m.OnLocation("nowhere")
	if got := m.Current(); got != "village_theme.ogg" {
		t.Errorf("Expected default track, got %q", got)
	}
}

func TestManager_Toggle(t *testing.T) {
	m := NewManager("", testLogger())

	if got := m.Toggle(); got != "Music off." {
		t.Errorf("Expected Music off., got %q", got)
	}
	if m.Current() != "" {
		t.Error("Disabled music should report no current track")
	}
	m.OnLocation("forest_path")
	if m.Current() != "" {
		t.Error("OnLocation must be a no-op while disabled")
	}
	if got := m.Toggle(); got != "Music on." {
		t.Errorf("Expected Music on., got %q", got)
	}
}

func TestManager_VolumeClamps(t *testing.T) {
	m := NewManager("", testLogger())

	if got := m.SetVolume(150); got != "Volume set to 100." {
		t.Errorf("Expected clamp to 100, got %q", got)
	}
	if got := m.SetVolume(-5); got != "Volume set to 0." {
		t.Errorf("Expected clamp to 0, got %q", got)
	}
	if got := m.SetVolume(40); got != "Volume set to 40." {
		t.Errorf("Expected 40, got %q", got)
	}
}

func TestManager_CustomPlaylist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.yaml")
	custom := "default: silence.ogg\ntracks:\n  village_square: chiptune.ogg\n"
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path, testLogger())
	m.OnLocation("village_square")
	if got := m.Current(); got != "chiptune.ogg" {
		t.Errorf("Expected custom track, got %q", got)
	}
	m.OnLocation("deep_forest")
	if got := m.Current(); got != "silence.ogg" {
		t.Errorf("Expected custom default, got %q", got)
	}
}

func TestManager_UnreadablePathFallsBack(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.yaml"), testLogger())
	m.OnLocation("village_square")
	if got := m.Current(); got != "village_theme.ogg" {
		t.Errorf("Expected embedded fallback, got %q", got)
	}
}
