// Package store persists all application state in a single JSON document.
// The document holds one top-level field per named collection; every save
// rewrites the whole document while leaving sibling collections untouched.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application name used for the config directory
	AppName = "management-cli"
	// DataFile is the name of the JSON document holding all collections
	DataFile = "data.json"
)

// ErrParse is returned when the document on disk is not valid JSON.
var ErrParse = errors.New("data file is not valid JSON")

// Store reads and writes named collections in one JSON document.
type Store struct {
	path string
}

// New creates a Store backed by the document at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns the path to the data document.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, DataFile), nil
}

// readDocument reads the whole document into a field map.
// A missing or empty file yields an empty document (first-run behavior).
func (s *Store) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}

	doc := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

// Load decodes the named collection into out, which must be a pointer to a
// slice. Returns false if the collection is not present in the document;
// an absent collection is distinct from an empty one.
func (s *Store) Load(collection string, out any) (bool, error) {
	doc, err := s.readDocument()
	if err != nil {
		return false, err
	}

	raw, ok := doc[collection]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: collection %q: %v", ErrParse, collection, err)
	}
	return true, nil
}

// Save replaces the named collection and rewrites the whole document.
// All other collections survive untouched (read-merge-write). A rotating
// backup of the previous document is created before the rewrite.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func (s *Store) Save(collection string, records any) error {
	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	doc[collection] = raw

	if err := CreateBackup(s.path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, append(data, '\n'), 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, s.path)
}
