package host

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/BrandonKowalski/fragula/pkg/fragula/navigation"
)

// DefaultStateKey is the state-store key the back-stack is saved under.
const DefaultStateKey = "fragula.backstack"

type savedState struct {
	Entries []navigation.SavedEntry `toml:"entries"`
}

func encodeBackStack(entries []navigation.SavedEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(savedState{Entries: entries}); err != nil {
		return nil, fmt.Errorf("encode back-stack: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeBackStack(data []byte) ([]navigation.SavedEntry, error) {
	var st savedState
	if _, err := toml.Decode(string(data), &st); err != nil {
		return nil, fmt.Errorf("decode back-stack: %w", err)
	}
	return st.Entries, nil
}

// MemoryStateStore keeps state in memory for the lifetime of the process.
type MemoryStateStore struct {
	values map[string][]byte
}

// NewMemoryStateStore creates an empty MemoryStateStore.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{values: make(map[string][]byte)}
}

func (s *MemoryStateStore) SaveState(key string, data []byte) error {
	s.values[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStateStore) LoadState(key string) ([]byte, bool) {
	data, ok := s.values[key]
	return data, ok
}

// FileStateStore keeps each key in its own file under Dir.
type FileStateStore struct {
	Dir string
}

func (s FileStateStore) path(key string) string {
	return filepath.Join(s.Dir, key+".toml")
}

func (s FileStateStore) SaveState(key string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

func (s FileStateStore) LoadState(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			internal.GetInternalLogger().Warn("Failed to read saved state", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}
