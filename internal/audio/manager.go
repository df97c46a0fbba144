// Package audio tracks background music state. Playback itself is an
// external concern; every operation here degrades to a log line, so a
// missing or broken audio setup can never block gameplay.
package audio

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed playlist.yaml
var defaultPlaylist []byte

// Playlist maps locations to track files.
type Playlist struct {
	Default string            `yaml:"default"`
	Tracks  map[string]string `yaml:"tracks"`
}

// Manager owns music on/off state, volume, and the current track.
type Manager struct {
	playlist Playlist
	enabled  bool
	volume   int // 0-100
	current  string
	logger   *slog.Logger
}

// NewManager loads the playlist from path, falling back to the embedded
// default when the path is empty or unreadable.
func NewManager(path string, logger *slog.Logger) *Manager {
	m := &Manager{enabled: true, volume: 70, logger: logger}

	data := defaultPlaylist
	if path != "" {
		if fileData, err := os.ReadFile(path); err == nil {
			data = fileData
		} else {
			logger.Warn("music config unreadable, using built-in playlist", "path", path, "error", err)
		}
	}
	if err := yaml.Unmarshal(data, &m.playlist); err != nil {
		logger.Warn("music playlist is malformed, music disabled", "error", err)
		m.enabled = false
	}
	return m
}

// Toggle flips music on or off and reports the new state.
func (m *Manager) Toggle() string {
	m.enabled = !m.enabled
	if m.enabled {
		m.logger.Debug("music on", "track", m.current)
		return "Music on."
	}
	m.logger.Debug("music off")
	return "Music off."
}

// SetVolume clamps and applies a volume in [0, 100].
func (m *Manager) SetVolume(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	m.volume = v
	m.logger.Debug("music volume changed", "volume", v)
	return fmt.Sprintf("Volume set to %d.", v)
}

// OnLocation switches the current track for a location. Best effort;
// unknown locations fall back to the default track.
func (m *Manager) OnLocation(locationKey string) {
	if !m.enabled {
		return
	}
	track, ok := m.playlist.Tracks[locationKey]
	if !ok {
		track = m.playlist.Default
	}
	if track == m.current {
		return
	}
	m.current = track
	m.logger.Debug("music track changed", "location", locationKey, "track", track)
}

// Current returns the track that would be playing now.
func (m *Manager) Current() string {
	if !m.enabled {
		return ""
	}
	return m.current
}
