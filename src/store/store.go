package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/loot-scout/loot-scout-go/src/types"
)

// DataVersion stamps the persisted blob. Bumped whenever the record shape or
// label formats change; a mismatched file is discarded rather than migrated.
const DataVersion = "2"

// DefaultFilename is the store file name under the data directory.
const DefaultFilename = "loot-data.json"

// Store is the local result cache: one JSON blob holding every looked-up
// item's LootResult plus the id->name map resolved through garland.
// Safe for concurrent use by the lookup worker pool.
type Store struct {
	mu   sync.RWMutex
	path string
	data types.StoredLootData
}

// New creates a store backed by the file at path, loading whatever valid
// data is already there. A missing or corrupt file starts the store empty.
func New(path string) *Store {
	s := &Store{
		path: path,
		data: emptyData(),
	}
	s.load()
	return s
}

func emptyData() types.StoredLootData {
	return types.StoredLootData{
		Version:         DataVersion,
		Entries:         make(map[string]types.LootResult),
		NormalizedNames: make(map[uint32]string),
	}
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not read loot store", "path", s.path, "error", err)
		}
		return
	}

	var data types.StoredLootData
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Error("corrupt loot store, starting empty", "path", s.path, "error", err)
		return
	}

	if data.Version != DataVersion {
		slog.Info("loot store version mismatch, discarding", "found", data.Version, "want", DataVersion)
		return
	}

	if data.Entries == nil {
		data.Entries = make(map[string]types.LootResult)
	}
	if data.NormalizedNames == nil {
		data.NormalizedNames = make(map[uint32]string)
	}
	s.data = data
}

// Save writes the store back to disk as a single JSON blob.
func (s *Store) Save() error {
	s.mu.RLock()
	raw, err := json.Marshal(s.data)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal loot store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write loot store %s: %w", s.path, err)
	}
	return nil
}

// Get returns the stored result for a subject name, if any.
func (s *Store) Get(subjectName string) (types.LootResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.data.Entries[subjectName]
	return result, ok
}

// Put stores a result under its subject name, replacing any previous entry.
func (s *Store) Put(result types.LootResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Entries[result.SubjectName] = result
}

// PutNormalizedName records the canonical English name for an item id.
func (s *Store) PutNormalizedName(itemID uint32, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.NormalizedNames[itemID] = name
}

// NormalizedName returns the canonical English name for an item id, if known.
func (s *Store) NormalizedName(itemID uint32) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.data.NormalizedNames[itemID]
	return name, ok
}

// SubjectNames returns every stored subject name, sorted.
func (s *Store) SubjectNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data.Entries))
	for name := range s.data.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Entries)
}
