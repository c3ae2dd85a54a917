// Package leagues persists user-defined league bookmarks: named drafts with
// their Sleeper draft URL and identifier, so a draft can be rejoined without
// re-entering its id. Bookmarks are stored as a single YAML file.
package leagues

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/draftkit/draftboard/pkg/constants"
	"github.com/draftkit/draftboard/pkg/errors"
)

// League is one saved league bookmark.
type League struct {
	Name      string    `yaml:"name"`
	DraftURL  string    `yaml:"draft_url"`
	DraftID   string    `yaml:"draft_id"`
	CreatedAt time.Time `yaml:"created_at"`
	LastUsed  time.Time `yaml:"last_used"`
}

// Store manages league bookmarks backed by a YAML file. The file is read
// once at construction and rewritten after every mutation.
type Store struct {
	path    string
	leagues map[string]*League

	// now is swappable for tests
	now func() time.Time
}

// NewStore opens the store at path, loading any existing bookmarks.
// A missing file is not an error; the store starts empty.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		leagues: make(map[string]*League),
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}
	if err := yaml.Unmarshal(data, &s.leagues); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return s, nil
}

// Add saves a new league bookmark. Adding a name that already exists fails
// with ErrAlreadyExists; use Update to change an existing bookmark.
func (s *Store) Add(name, draftURL, draftID string) error {
	if name == "" {
		return &errors.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if _, exists := s.leagues[name]; exists {
		return errors.ErrAlreadyExists
	}

	now := s.now()
	s.leagues[name] = &League{
		Name:      name,
		DraftURL:  draftURL,
		DraftID:   draftID,
		CreatedAt: now,
		LastUsed:  now,
	}
	return s.save()
}

// Update changes the draft URL and id of an existing bookmark and refreshes
// its last-used timestamp.
func (s *Store) Update(name, draftURL, draftID string) error {
	league, ok := s.leagues[name]
	if !ok {
		return errors.NewNotFoundError("league", name)
	}
	league.DraftURL = draftURL
	league.DraftID = draftID
	league.LastUsed = s.now()
	return s.save()
}

// Delete removes a bookmark.
func (s *Store) Delete(name string) error {
	if _, ok := s.leagues[name]; !ok {
		return errors.NewNotFoundError("league", name)
	}
	delete(s.leagues, name)
	return s.save()
}

// Get returns a bookmark by name.
func (s *Store) Get(name string) (*League, error) {
	league, ok := s.leagues[name]
	if !ok {
		return nil, errors.NewNotFoundError("league", name)
	}
	return league, nil
}

// List returns all bookmarks ordered by last use, most recent first.
func (s *Store) List() []*League {
	out := make([]*League, 0, len(s.leagues))
	for _, league := range s.leagues {
		out = append(out, league)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastUsed.Equal(out[j].LastUsed) {
			return out[i].Name < out[j].Name
		}
		return out[i].LastUsed.After(out[j].LastUsed)
	})
	return out
}

// Len returns the number of saved bookmarks.
func (s *Store) Len() int {
	return len(s.leagues)
}

// MarkUsed refreshes a bookmark's last-used timestamp.
func (s *Store) MarkUsed(name string) error {
	league, ok := s.leagues[name]
	if !ok {
		return errors.NewNotFoundError("league", name)
	}
	league.LastUsed = s.now()
	return s.save()
}

// Export serializes all bookmarks to YAML for sharing or backup.
func (s *Store) Export() ([]byte, error) {
	data, err := yaml.Marshal(s.leagues)
	if err != nil {
		return nil, errors.WrapParse("yaml", s.path, err)
	}
	return data, nil
}

// Import merges bookmarks from exported YAML data into the store.
// Imported entries overwrite existing entries with the same name.
func (s *Store) Import(data []byte) error {
	imported := make(map[string]*League)
	if err := yaml.Unmarshal(data, &imported); err != nil {
		return errors.WrapParse("yaml", "import data", err)
	}
	for name, league := range imported {
		if league.Name == "" {
			league.Name = name
		}
		s.leagues[name] = league
	}
	return s.save()
}

// save rewrites the backing file.
func (s *Store) save() error {
	data, err := yaml.Marshal(s.leagues)
	if err != nil {
		return errors.WrapParse("yaml", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}
