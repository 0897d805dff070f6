package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists last-known-good artifacts per team, keyed by lower-cased
// slug. One file per team and artifact kind, last write wins.
type Store struct {
	cacheDir string
}

// New creates a Store rooted at cacheDir, creating it if needed.
func New(cacheDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(cacheDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		cacheDir = filepath.Join(home, cacheDir[2:])
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Store{cacheDir: cacheDir}, nil
}

func (s *Store) path(teamSlug, ext string) string {
	return filepath.Join(s.cacheDir, strings.ToLower(teamSlug)+ext)
}

// SaveCalendar caches a team's generated ICS bytes.
func (s *Store) SaveCalendar(teamSlug string, data []byte) error {
	if err := os.WriteFile(s.path(teamSlug, ".ics"), data, 0644); err != nil {
		return fmt.Errorf("writing calendar cache: %w", err)
	}
	return nil
}

// LoadCalendar returns a team's cached ICS bytes, or nil if none exist.
func (s *Store) LoadCalendar(teamSlug string) ([]byte, error) {
	data, err := os.ReadFile(s.path(teamSlug, ".ics"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading calendar cache: %w", err)
	}
	return data, nil
}

// SaveData caches a team's generated JSON data document.
func (s *Store) SaveData(teamSlug string, data []byte) error {
	if err := os.WriteFile(s.path(teamSlug, ".json"), data, 0644); err != nil {
		return fmt.Errorf("writing data cache: %w", err)
	}
	return nil
}

// LoadData returns a team's cached JSON data, or nil if none exist.
func (s *Store) LoadData(teamSlug string) ([]byte, error) {
	data, err := os.ReadFile(s.path(teamSlug, ".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data cache: %w", err)
	}
	return data, nil
}
