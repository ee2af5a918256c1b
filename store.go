package pricetracker

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Store is the durable home of one observation set: a single CSV file, plus
// a sibling directory of timestamped backups.
//
// A Store is only a handle; it keeps no file open and caches nothing. Load
// returns an explicit snapshot, and callers reload when they want fresher
// data. One process writes a given file at a time, by deployment convention.
type Store struct {
	path      string
	backupDir string
	retention int
}

// NewStore creates a handle on the store file at path. The backup directory
// and retention come from cfg; an empty BackupDir means "backups" next to
// the store file.
func NewStore(path string, cfg Config) *Store {
	cfg = cfg.Normalize()
	dir := cfg.BackupDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(path), "backups")
	}
	return &Store{path: path, backupDir: dir, retention: cfg.BackupRetention}
}

// Path returns the store file path.
func (s *Store) Path() string { return s.path }

// BackupDir returns the directory holding backup copies.
func (s *Store) BackupDir() string { return s.backupDir }

// Snapshot is the result of one load: the observation set as it was on disk,
// plus the count of rows that could not be parsed. Callers that want fresher
// data call Load again; nothing refreshes behind their back.
type Snapshot struct {
	Set      *ObservationSet
	Skipped  int
	LoadedAt time.Time
}

// Load reads the store file. A missing file is a first run: Load creates it
// with the header and returns an empty snapshot. An unrecognized header is
// CorruptStoreError; malformed rows are skipped and counted in the snapshot.
func (s *Store) Load() (*Snapshot, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("store %s does not exist, creating it", s.path)
		if err := s.create(); err != nil {
			return nil, err
		}
		return &Snapshot{Set: NewObservationSet(), LoadedAt: time.Now()}, nil
	}
	if err != nil {
		return nil, &StoreIOError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	set, skipped, err := DecodeObservations(f)
	if err != nil {
		var corrupt *CorruptStoreError
		if errors.As(err, &corrupt) {
			corrupt.Path = s.path
			return nil, corrupt
		}
		return nil, &StoreIOError{Op: "read", Path: s.path, Err: err}
	}
	if skipped > 0 {
		log.Printf("store %s: skipped %d malformed rows", s.path, skipped)
	}
	return &Snapshot{Set: set, Skipped: skipped, LoadedAt: time.Now()}, nil
}

// create writes a fresh store file holding only the header.
func (s *Store) create() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StoreIOError{Op: "create", Path: s.path, Err: err}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return &StoreIOError{Op: "create", Path: s.path, Err: err}
	}
	defer f.Close()
	if err := EncodeHeader(f); err != nil {
		return &StoreIOError{Op: "create", Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &StoreIOError{Op: "create", Path: s.path, Err: err}
	}
	return nil
}

// Append adds one observation at the end of the store file and makes it
// durable before returning: the row is flushed and fsynced, so a crash right
// after Append cannot lose it. The header is written first when the file is
// new or empty.
func (s *Store) Append(o Observation) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StoreIOError{Op: "append", Path: s.path, Err: err}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &StoreIOError{Op: "append", Path: s.path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return &StoreIOError{Op: "append", Path: s.path, Err: err}
	}
	if fi.Size() == 0 {
		if err := EncodeHeader(f); err != nil {
			return &StoreIOError{Op: "append", Path: s.path, Err: err}
		}
	}
	if err := EncodeObservation(f, o); err != nil {
		return &StoreIOError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &StoreIOError{Op: "append", Path: s.path, Err: err}
	}
	return nil
}

// Save rewrites the whole store from the given set. The current file is
// backed up first, then the new content is written to a temporary file in
// the same directory, fsynced, and renamed over the store, so the store is
// never visible in a half-written state.
func (s *Store) Save(set *ObservationSet) error {
	if _, err := os.Stat(s.path); err == nil {
		// Backup precedes every destructive rewrite.
		if _, err := s.Backup(); err != nil {
			return err
		}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StoreIOError{Op: "save", Path: s.path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".prices-*.csv")
	if err != nil {
		return &StoreIOError{Op: "save", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeObservations(tmp, set); err != nil {
		tmp.Close()
		return &StoreIOError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &StoreIOError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StoreIOError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &StoreIOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}
