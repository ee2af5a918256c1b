package pricetracker

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// backupTimeFormat timestamps backup names so that lexical order is
// chronological order.
const backupTimeFormat = "20060102_150405"

const backupPrefix, backupExt = "backup_", ".csv"

// backupName builds the file name of a backup taken at t.
func backupName(t time.Time) string {
	return backupPrefix + t.Format(backupTimeFormat) + backupExt
}

// parseBackupTime extracts the timestamp from a backup file name. Anything
// that does not match the naming scheme is not ours and never a deletion
// candidate.
func parseBackupTime(name string) (time.Time, error) {
	if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
		return time.Time{}, fmt.Errorf("not a backup name: %q", name)
	}
	base := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupExt)
	return time.Parse(backupTimeFormat, base)
}

// Backup copies the live store file into the backup directory under a
// timestamped name, then rotates old backups beyond the retention bound.
// It returns the path of the new copy.
func (s *Store) Backup() (string, error) {
	src, err := os.Open(s.path)
	if err != nil {
		return "", &StoreIOError{Op: "backup", Path: s.path, Err: err}
	}
	defer src.Close()

	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return "", &StoreIOError{Op: "backup", Path: s.backupDir, Err: err}
	}
	dst := filepath.Join(s.backupDir, backupName(time.Now()))
	out, err := os.Create(dst)
	if err != nil {
		return "", &StoreIOError{Op: "backup", Path: dst, Err: err}
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", &StoreIOError{Op: "backup", Path: dst, Err: err}
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return "", &StoreIOError{Op: "backup", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return "", &StoreIOError{Op: "backup", Path: dst, Err: err}
	}

	if err := s.rotate(); err != nil {
		return dst, err
	}
	return dst, nil
}

// Backups returns the paths of the current backup copies, oldest first.
func (s *Store) Backups() ([]string, error) {
	names, err := s.listBackups()
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(s.backupDir, name)
	}
	return paths, nil
}

// listBackups lists backup file names in the backup directory, oldest first.
func (s *Store) listBackups() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StoreIOError{Op: "backup", Path: s.backupDir, Err: err}
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := parseBackupTime(entry.Name()); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	// Sort by name (oldest first)
	sort.Strings(names)
	return names, nil
}

// rotate deletes the oldest backups beyond the retention count. It only ever
// removes files matching the backup naming scheme, inside the backup
// directory; the live store is not a candidate.
func (s *Store) rotate() error {
	names, err := s.listBackups()
	if err != nil {
		return err
	}
	if len(names) <= s.retention {
		return nil
	}

	var errs error
	deleted := 0
	for _, name := range names[:len(names)-s.retention] {
		path := filepath.Join(s.backupDir, name)
		if err := os.Remove(path); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete %s: %w", path, err))
			continue
		}
		deleted++
	}
	if deleted > 0 {
		log.Printf("rotated %d old backups out of %s", deleted, s.backupDir)
	}
	if errs != nil {
		return &StoreIOError{Op: "backup", Path: s.backupDir, Err: errs}
	}
	return nil
}
