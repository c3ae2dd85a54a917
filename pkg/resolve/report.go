package resolve

import (
	"sort"

	"github.com/draftkit/draftboard/pkg/players"
)

// UnlistedPick identifies a drafted registry player that no ranked player
// currently flagged drafted corresponds to: either the ranking source never
// listed them, or resolution and reconciliation both failed to associate them.
type UnlistedPick struct {
	ID       string
	FullName string
	Team     string
	Position string
}

// UnmatchedDrafted returns reverse diagnostics over the pick set: every
// drafted identifier whose normalized registry name matches no drafted
// ranked player. It is read-only and mutates nothing. Results are ordered
// by identifier for reproducible output.
func UnmatchedDrafted(picks players.PickSet, list []*players.Player, registry players.Registry) []UnlistedPick {
	if picks.Len() == 0 {
		return nil
	}

	draftedKeys := make(map[string]struct{})
	for _, p := range list {
		if p.Drafted {
			draftedKeys[Normalize(p.Name)] = struct{}{}
		}
	}

	var out []UnlistedPick
	for id := range picks {
		rp, ok := registry[id]
		if !ok {
			continue
		}
		if _, covered := draftedKeys[Normalize(rp.FullName)]; covered {
			continue
		}
		out = append(out, UnlistedPick{
			ID:       id,
			FullName: rp.FullName,
			Team:     rp.Team,
			Position: rp.Position,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
