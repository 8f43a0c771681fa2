package storage

import (
	"github.com/taskdeck/taskdeck/internal/theme"
)

// KeyColorScheme is the key the chosen color scheme is stored under.
const KeyColorScheme = "colorscheme"

// ThemeStore persists the selected color scheme.
type ThemeStore struct {
	db *DB
}

// NewThemeStore creates a theme store over the given database.
func NewThemeStore(db *DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// Get returns the stored scheme, or the default when none is stored or
// the stored value is not a known scheme.
func (s *ThemeStore) Get() theme.Scheme {
	data, err := s.db.GetBytes(KeyColorScheme)
	if err != nil {
		return theme.Default
	}
	scheme := theme.Scheme(data)
	if !scheme.Valid() {
		return theme.Default
	}
	return scheme
}

// Set stores the scheme.
func (s *ThemeStore) Set(scheme theme.Scheme) error {
	return s.db.SetBytes(KeyColorScheme, []byte(scheme))
}
