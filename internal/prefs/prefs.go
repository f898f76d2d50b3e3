// Package prefs persists process-wide user preferences: the first
// launch flag, the selected view filter, and the last used category.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/trackerhq/tracker/internal/model"
)

// Store is a file-backed preference store. Every setter writes through
// to disk immediately.
type Store struct {
	path string
	v    *viper.Viper
}

// DefaultPath returns the default preference file location,
// ~/.config/tracker/prefs.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "prefs.yaml")
	}
	return filepath.Join(home, ".config", "tracker", "prefs.yaml")
}

// Load reads preferences from path. A missing file yields defaults.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("first_launch", true)
	v.SetDefault("filter_mode", string(model.FilterAll))
	v.SetDefault("last_category", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return &Store{path: path, v: v}, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &Store{path: path, v: v}, nil
		}
		return nil, fmt.Errorf("reading preferences %s: %w", path, err)
	}

	return &Store{path: path, v: v}, nil
}

// save writes the current preference state to disk, creating parent
// directories if needed.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating preferences directory %s: %w", dir, err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing preferences to %s: %w", s.path, err)
	}
	return nil
}

// FirstLaunch reports whether the app has never been run before.
func (s *Store) FirstLaunch() bool {
	return s.v.GetBool("first_launch")
}

// MarkLaunched clears the first-launch flag.
func (s *Store) MarkLaunched() error {
	s.v.Set("first_launch", false)
	return s.save()
}

// FilterMode returns the persisted view filter. Unknown stored values
// fall back to "all".
func (s *Store) FilterMode() model.FilterMode {
	mode, err := model.ParseFilterMode(s.v.GetString("filter_mode"))
	if err != nil {
		return model.FilterAll
	}
	return mode
}

// SetFilterMode persists the view filter.
func (s *Store) SetFilterMode(mode model.FilterMode) error {
	if _, err := model.ParseFilterMode(string(mode)); err != nil {
		return err
	}
	s.v.Set("filter_mode", string(mode))
	return s.save()
}

// LastCategory returns the most recently used category title.
func (s *Store) LastCategory() string {
	return s.v.GetString("last_category")
}

// SetLastCategory persists the most recently used category title.
func (s *Store) SetLastCategory(title string) error {
	s.v.Set("last_category", title)
	return s.save()
}
