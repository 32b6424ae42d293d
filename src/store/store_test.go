package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/loot-scout/loot-scout-go/src/types"
)

func sampleResult(name string) types.LootResult {
	result := types.NewLootResult(name)
	result.DropLocations = append(result.DropLocations, types.DropRecord{
		SourceName:      "Gold Whisker",
		LocationLabel:   "Old Gridania",
		LevelLabel:      "47",
		CoordinateLabel: "(12.3,34.5)",
	})
	return *result
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loot-data.json")

	s := New(path)
	if s.Len() != 0 {
		t.Fatalf("fresh store has %d entries, want 0", s.Len())
	}

	s.Put(sampleResult("Gold Ore"))
	s.PutNormalizedName(5057, "Gold Ore")
	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded := New(path)
	result, ok := reloaded.Get("Gold Ore")
	if !ok {
		t.Fatal("reloaded store is missing the stored result")
	}
	if !reflect.DeepEqual(result, sampleResult("Gold Ore")) {
		t.Errorf("reloaded result differs: %+v", result)
	}

	name, ok := reloaded.NormalizedName(5057)
	if !ok || name != "Gold Ore" {
		t.Errorf("NormalizedName(5057) = %q, %t", name, ok)
	}
}

func TestStoreMissingFileStartsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loot-data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreVersionMismatchDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loot-data.json")
	old := `{"version":"1","entries":{"Gold Ore":{"subject-name":"Gold Ore","drop-locations":[],"purchase-locations":[]}}}`
	if err := os.WriteFile(path, []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after version mismatch", s.Len())
	}
}

func TestStorePutReplaces(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "loot-data.json"))

	s.Put(sampleResult("Gold Ore"))
	replacement := *types.NewLootResult("Gold Ore")
	s.Put(replacement)

	result, ok := s.Get("Gold Ore")
	if !ok {
		t.Fatal("entry missing after replacement")
	}
	if len(result.DropLocations) != 0 {
		t.Errorf("replacement did not overwrite: %+v", result)
	}
}

func TestStoreSubjectNamesSorted(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "loot-data.json"))
	s.Put(*types.NewLootResult("Mythril Ore"))
	s.Put(*types.NewLootResult("Gold Ore"))
	s.Put(*types.NewLootResult("Copper Ore"))

	expected := []string{"Copper Ore", "Gold Ore", "Mythril Ore"}
	if got := s.SubjectNames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("SubjectNames() = %v, want %v", got, expected)
	}
}
