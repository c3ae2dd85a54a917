package resolve

import (
	"strings"

	"github.com/draftkit/draftboard/pkg/players"
)

// Index holds the lookup tables built over one registry snapshot: raw full
// names, normalized name variants, and normalized variants partitioned by
// position. It is rebuilt from scratch for every resolution pass because
// registry contents can change between pulls; it is never persisted.
type Index struct {
	exact      map[string]string            // raw full name -> id
	normalized map[string]string            // normalized key -> id
	byPosition map[string]map[string]string // uppercased position -> normalized key -> id
}

// BuildIndex constructs an Index over a registry snapshot. Every registry
// entry with a usable name contributes its full name, its source-supplied
// search name, and its "first last" combination when present. Duplicate
// names overwrite earlier entries; such collisions are rare and accepted.
func BuildIndex(registry players.Registry) *Index {
	idx := &Index{
		exact:      make(map[string]string),
		normalized: make(map[string]string),
		byPosition: make(map[string]map[string]string),
	}

	for id, rp := range registry {
		var keys []string
		if rp.FullName != "" {
			idx.exact[rp.FullName] = id
			keys = append(keys, Normalize(rp.FullName))
		}
		if rp.SearchFullName != "" {
			keys = append(keys, Normalize(rp.SearchFullName))
		}
		if rp.FirstName != "" && rp.LastName != "" {
			keys = append(keys, Normalize(rp.FirstName+" "+rp.LastName))
		}

		for _, key := range keys {
			if key == "" {
				continue
			}
			idx.normalized[key] = id
		}

		pos := strings.ToUpper(rp.Position)
		if pos == "" {
			continue
		}
		table := idx.byPosition[pos]
		if table == nil {
			table = make(map[string]string)
			idx.byPosition[pos] = table
		}
		for _, key := range keys {
			if key == "" {
				continue
			}
			table[key] = id
		}
	}

	return idx
}

// candidates returns the normalized table biased toward the given position,
// falling back to the full normalized table when the position has no entries.
func (idx *Index) candidates(position string) map[string]string {
	if table := idx.byPosition[strings.ToUpper(position)]; len(table) > 0 {
		return table
	}
	return idx.normalized
}
