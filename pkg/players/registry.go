package players

// RegistryPlayer is one entry from the Sleeper player registry. Only the
// name, team, and position fields participate in identity resolution; the
// status fields are carried through for display and never interpreted.
type RegistryPlayer struct {
	FullName       string `json:"full_name"`
	SearchFullName string `json:"search_full_name,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Team           string `json:"team,omitempty"`
	Position       string `json:"position,omitempty"`

	// Status metadata, opaque to the resolution core
	Status       string `json:"status,omitempty"`
	InjuryStatus string `json:"injury_status,omitempty"`
	InjuryNotes  string `json:"injury_notes,omitempty"`
}

// Registry is a snapshot of the external player registry, keyed by the
// opaque Sleeper player identifier.
type Registry map[string]RegistryPlayer

// PickSet is a set of registry identifiers considered drafted. Each refresh
// from the picks feed fully replaces the previous set; sets are never merged.
type PickSet map[string]struct{}

// NewPickSet creates a PickSet from the given identifiers.
func NewPickSet(ids ...string) PickSet {
	s := make(PickSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s PickSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s PickSet) Add(id string) {
	s[id] = struct{}{}
}

// Len returns the number of drafted identifiers.
func (s PickSet) Len() int {
	return len(s)
}
