// Package players defines the data model shared across the draftboard system:
// ranked players loaded from a rankings feed, the external Sleeper player
// registry keyed by opaque identifiers, and the set of drafted identifiers.
package players

import (
	"sort"
	"strings"
)

// Player is one row from the ranking source, annotated over time by the
// resolution pipeline. The pipeline owns two mutable fields: SleeperID is
// assigned at most once by the matcher and never reassigned; Drafted is
// recomputed in full on every reconciliation pass.
type Player struct {
	// Ranking source fields
	Name         string
	Team         string // short code, or "FA" for free agents
	Position     string // QB, RB, WR, TE, K, DEF
	OverallRank  int
	PositionRank int
	Tier         int
	ByeWeek      int
	SOSSeason    string // strength of schedule, e.g. "3/5"
	ECRvsADP     int    // rank delta vs average draft position

	// Resolution pipeline fields
	SleeperID string // external registry identifier, empty until resolved
	Drafted   bool
}

// Resolved reports whether the player has been matched to a registry identifier.
func (p *Player) Resolved() bool {
	return p.SleeperID != ""
}

// TopByPosition returns the top undrafted players for a position,
// ordered by overall rank.
func TopByPosition(list []*Player, position string, limit int) []*Player {
	var out []*Player
	for _, p := range list {
		if p.Position == position && !p.Drafted {
			out = append(out, p)
		}
	}
	sortByOverallRank(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopAvailable returns the top undrafted players overall, ordered by overall rank.
func TopAvailable(list []*Player, limit int) []*Player {
	var out []*Player
	for _, p := range list {
		if !p.Drafted {
			out = append(out, p)
		}
	}
	sortByOverallRank(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Drafted returns all players flagged as drafted, ordered by overall rank.
func Drafted(list []*Player) []*Player {
	var out []*Player
	for _, p := range list {
		if p.Drafted {
			out = append(out, p)
		}
	}
	sortByOverallRank(out)
	return out
}

// Search returns the first player whose name contains the query,
// case-insensitively, or nil if none matches.
func Search(list []*Player, query string) *Player {
	q := strings.ToLower(query)
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return p
		}
	}
	return nil
}

func sortByOverallRank(list []*Player) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].OverallRank < list[j].OverallRank
	})
}
