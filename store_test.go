package pricetracker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "prices.csv"), DefaultConfig())
}

func TestStore_LoadCreatesMissingFile(t *testing.T) {
	s := testStore(t)

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Set.Len() != 0 || snap.Skipped != 0 {
		t.Errorf("first load returned %d observations and %d skipped, want an empty snapshot", snap.Set.Len(), snap.Skipped)
	}

	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("the store file was not created: %v", err)
	}
	if got := strings.TrimSpace(string(content)); got != strings.Join(Header, ",") {
		t.Errorf("fresh store content = %q, want the bare header", got)
	}
}

func TestStore_AppendAndLoad(t *testing.T) {
	s := testStore(t)
	first := ob(0, "Rice (1kg)", 35.5, "Banjul", "2024-06-01")
	second := ob(1, "Bread", 10, "Serekunda", "2024-06-02")

	for _, o := range []Observation{first, second} {
		if err := s.Append(o); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Set.Len() != 2 {
		t.Fatalf("loaded %d observations, want 2", snap.Set.Len())
	}
	if !snap.Set.At(0).Equal(first) || !snap.Set.At(1).Equal(second) {
		t.Error("loaded observations differ from the appended ones")
	}

	// The header must appear exactly once, on the first line.
	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(content), "Item,Price"); got != 1 {
		t.Errorf("header appears %d times, want once", got)
	}
}

func TestStore_AppendToEmptyFile(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.Path(), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.Append(ob(0, "Bread", 10, "Banjul", "2024-06-01")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	content, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), strings.Join(Header, ",")) {
		t.Errorf("appending to an empty file must write the header first, got %q", content)
	}
}

func TestStore_SaveAndReload(t *testing.T) {
	s := testStore(t)
	set := setOf(
		ob(0, "Rice (1kg)", 35.5, "Banjul", "2024-06-01"),
		ob(1, "Bread", 10, "Serekunda", "2024-06-02"),
		ob(2, "Fish (Bonga)", 25, "Tanji", "2024-06-03"),
	)

	if err := s.Save(set); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Saving over a missing file takes no backup, there is nothing to keep.
	if backups, err := s.Backups(); err != nil || len(backups) != 0 {
		t.Errorf("Backups() = %v, %v, want none after the first save", backups, err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Set.Len() != set.Len() {
		t.Fatalf("loaded %d observations, want %d", snap.Set.Len(), set.Len())
	}
	for i, want := range set.All() {
		if got := snap.Set.At(i); !got.Equal(want) {
			t.Errorf("observation %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestStore_SaveBacksUpPreviousVersion(t *testing.T) {
	s := testStore(t)
	v1 := setOf(ob(0, "Bread", 10, "Banjul", "2024-06-01"))
	v2 := setOf(
		ob(0, "Bread", 10, "Banjul", "2024-06-01"),
		ob(1, "Bread", 12, "Banjul", "2024-06-02"),
	)

	if err := s.Save(v1); err != nil {
		t.Fatalf("Save(v1) error = %v", err)
	}
	if err := s.Save(v2); err != nil {
		t.Fatalf("Save(v2) error = %v", err)
	}

	backups, err := s.Backups()
	if err != nil {
		t.Fatalf("Backups() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1: the second save must keep the first version", len(backups))
	}

	f, err := os.Open(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	old, _, err := DecodeObservations(f)
	if err != nil {
		t.Fatalf("backup does not decode: %v", err)
	}
	if old.Len() != v1.Len() {
		t.Errorf("backup holds %d observations, want the previous version with %d", old.Len(), v1.Len())
	}
}

func TestStore_LoadCorruptHeader(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(s.Path(), []byte("Item,Cost,Location,Date,Timestamp,Currency,Unit\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load()
	var corrupt *CorruptStoreError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Load() error = %v, want CorruptStoreError", err)
	}
	if corrupt.Path != s.Path() {
		t.Errorf("CorruptStoreError.Path = %q, want %q", corrupt.Path, s.Path())
	}
}

func TestStore_LoadCountsSkippedRows(t *testing.T) {
	s := testStore(t)
	content := strings.Join([]string{
		"Item,Price,Location,Date,Timestamp,Currency,Unit",
		"Bread,10,Banjul,2024-06-01,2024-06-01T08:00:00Z,GMD,piece",
		"Bread,not-a-price,Banjul,2024-06-01,2024-06-01T08:00:01Z,GMD,piece",
		"",
	}, "\n")
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Set.Len() != 1 {
		t.Errorf("loaded %d observations, want 1", snap.Set.Len())
	}
	if snap.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", snap.Skipped)
	}
}

func TestNewStore_BackupDir(t *testing.T) {
	s := NewStore(filepath.Join("data", "prices.csv"), Config{})
	if got, want := s.BackupDir(), filepath.Join("data", "backups"); got != want {
		t.Errorf("BackupDir() = %q, want the sibling default %q", got, want)
	}

	s = NewStore("prices.csv", Config{BackupDir: "elsewhere"})
	if got := s.BackupDir(); got != "elsewhere" {
		t.Errorf("BackupDir() = %q, want the configured override", got)
	}
}
