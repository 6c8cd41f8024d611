// Package settings reads the JSON sidecar document that installers drop
// next to the tool's config, e.g. ~/.provsh/settings.json.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sheldir/provsh/internal/pkg/filesystem"
	"github.com/sheldir/provsh/internal/ports"
)

// Store lazily reads string fields from a JSON document. A missing file or
// malformed JSON reads as "no value" rather than an error: absence of
// settings is an expected state for a fresh installation.
type Store struct {
	path string
}

// NewStore builds a store over the given sidecar path; when empty, the
// default ~/.provsh/settings.json is used.
func NewStore(path string) *Store {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".provsh", "settings.json")
	}
	return &Store{path: filesystem.ExpandPath(path)}
}

// Lookup returns the string value of field, or "" when the sidecar is
// missing, malformed, or does not hold a string under that key.
func (s *Store) Lookup(field string) string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	if v, ok := doc[field].(string); ok {
		return v
	}
	return ""
}

// Path returns the backing sidecar path.
func (s *Store) Path() string {
	return s.path
}

var _ ports.SettingsProvider = (*Store)(nil)
