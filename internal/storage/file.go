package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Ensure FileStore implements Store interface
var _ Store = (*FileStore)(nil)

var slotNamePattern = regexp.MustCompile(`[^a-z0-9_-]+`)

// FileStore keeps one JSON document per save slot under a saves
// directory.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if dir == "" {
		dir = "./saves"
	}
	return &FileStore{dir: dir, logger: logger}
}

// SanitizeName normalizes a slot name to [a-z0-9_-].
func SanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = slotNamePattern.ReplaceAllString(name, "_")
	if name == "" {
		name = "save"
	}
	return name
}

func (f *FileStore) path(name string) string {
	return filepath.Join(f.dir, SanitizeName(name)+".json")
}

func (f *FileStore) Save(_ context.Context, name string, snap *Snapshot) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write save %q: %w", name, err)
	}
	f.logger.Debug("snapshot saved", "slot", SanitizeName(name))
	return nil
}

func (f *FileStore) Load(_ context.Context, name string) (*Snapshot, error) {
	data, err := os.ReadFile(f.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %q: %w", name, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("save %q is corrupt: %w", name, err)
	}
	return &snap, nil
}

func (f *FileStore) List(_ context.Context) ([]SaveInfo, error) {
	entries, err := os.ReadDir(f.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saves dir: %w", err)
	}

	var infos []SaveInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(f.dir, e.Name()))
		if err != nil {
			f.logger.Warn("skipping unreadable save", "slot", name, "error", err)
			continue
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			f.logger.Warn("skipping corrupt save", "slot", name, "error", err)
			continue
		}
		infos = append(infos, SaveInfo{Name: name, SavedAt: snap.SavedAt})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})
	return infos, nil
}

func (f *FileStore) Ping(_ context.Context) error {
	return os.MkdirAll(f.dir, 0o755)
}

func (f *FileStore) Close() error {
	return nil
}
