package resolve

import (
	"strings"

	"github.com/draftkit/draftboard/pkg/players"
)

// ApplyDrafted re-derives the Drafted flag on every player from the current
// pick set. It is a full recompute: all flags are reset first, so repeated
// calls with the same inputs are idempotent and a pick set that shrinks
// un-drafts players that were flagged under the previous set.
//
// Identifier membership is authoritative. A second pass recovers drafted
// status by normalized name for players the matcher failed to resolve,
// guarded by position so common-name collisions across positions cannot
// produce false positives.
func ApplyDrafted(list []*players.Player, picks players.PickSet, registry players.Registry) {
	for _, p := range list {
		p.Drafted = false
	}
	if picks.Len() == 0 {
		return
	}

	// Direct pass: resolved identifier is a member of the pick set.
	for _, p := range list {
		if p.Resolved() && picks.Has(p.SleeperID) {
			p.Drafted = true
		}
	}

	// Name-fallback pass. Positions of drafted registry entries, keyed by
	// normalized full name; an empty position means the registry recorded none.
	draftedNames := make(map[string][]string)
	for id := range picks {
		rp, ok := registry[id]
		if !ok {
			continue
		}
		key := Normalize(rp.FullName)
		if key == "" {
			continue
		}
		draftedNames[key] = append(draftedNames[key], strings.ToUpper(rp.Position))
	}

	for _, p := range list {
		if p.Drafted {
			continue
		}
		for _, pos := range draftedNames[Normalize(p.Name)] {
			if pos == "" || pos == strings.ToUpper(p.Position) {
				p.Drafted = true
				break
			}
		}
	}
}
