// Package resolve implements the identity-resolution core: it maps ranked
// players onto opaque Sleeper registry identifiers through a cascade of
// matching tiers, re-derives drafted flags as pick data changes, and reports
// the records that could not be associated.
//
// Every function in this package is a pure transformation over explicitly
// passed collections. Matching failure is a normal outcome surfaced through
// diagnostics, never an error.
package resolve

import (
	"strings"

	"github.com/draftkit/draftboard/pkg/players"
)

// FuzzyThreshold is the minimum similarity score the fuzzy tier accepts.
// A candidate scoring 87 is rejected; 88 is accepted.
const FuzzyThreshold = 88

// Candidate describes one fuzzy-match candidate: the normalized key that
// was compared, the registry id it maps to, and the similarity score.
type Candidate struct {
	Key   string
	ID    string
	Score int
}

// Unmatched is the diagnostic record for a player that no tier resolved.
// Best carries the highest-scoring fuzzy candidate even though its score
// fell below FuzzyThreshold; it is nil when no candidates existed at all.
type Unmatched struct {
	Player *players.Player
	Best   *Candidate
}

// Resolve assigns a registry identifier to every ranked player that lacks
// one, trying tiers in order and stopping at the first success:
//
//  1. exact raw-name lookup
//  2. exact normalized-name lookup
//  3. fuzzy match over same-position candidates, accepted at FuzzyThreshold
//  4. structural fallback on the (surname, team, position) triple, accepted
//     only when exactly one registry entry satisfies it
//
// It returns the number of players matched during this pass and diagnostics
// for those that remain unmatched. Resolve never touches the Drafted flag,
// and never reassigns an identifier that is already set.
func Resolve(list []*players.Player, idx *Index, registry players.Registry, scorer Scorer) (int, []Unmatched) {
	if scorer == nil {
		scorer = TokenSortRatio
	}

	matched := 0
	var unmatched []Unmatched

	for _, p := range list {
		if p.Resolved() {
			continue
		}

		// Tier 1: exact raw name
		if id, ok := idx.exact[p.Name]; ok {
			p.SleeperID = id
			matched++
			continue
		}

		// Tier 2: exact normalized name
		key := Normalize(p.Name)
		if id, ok := idx.normalized[key]; ok {
			p.SleeperID = id
			matched++
			continue
		}

		// Tier 3: fuzzy match, biased toward same-position candidates
		best := bestCandidate(key, idx.candidates(p.Position), scorer)
		if best != nil && best.Score >= FuzzyThreshold {
			p.SleeperID = best.ID
			matched++
			continue
		}

		// Tier 4: structural fallback on (surname, team, position)
		if id, ok := structuralMatch(key, p.Team, p.Position, registry); ok {
			p.SleeperID = id
			matched++
			continue
		}

		unmatched = append(unmatched, Unmatched{Player: p, Best: best})
	}

	return matched, unmatched
}

// bestCandidate scores key against every candidate and returns the maximum.
// Ties break toward the lexicographically smallest key, then the smallest id,
// so the outcome does not depend on map iteration order.
func bestCandidate(key string, table map[string]string, scorer Scorer) *Candidate {
	var best *Candidate
	for candidate, id := range table {
		score := scorer(key, candidate)
		switch {
		case best == nil, score > best.Score:
			best = &Candidate{Key: candidate, ID: id, Score: score}
		case score == best.Score:
			if candidate < best.Key || (candidate == best.Key && id < best.ID) {
				best = &Candidate{Key: candidate, ID: id, Score: score}
			}
		}
	}
	return best
}

// structuralMatch resolves nickname cases such as "Hollywood Brown" by the
// (normalized surname, team, position) triple. Free agents are excluded, and
// two or more candidates is ambiguity, which must never be guessed.
func structuralMatch(key, team, position string, registry players.Registry) (string, bool) {
	surname := lastToken(key)
	team = strings.ToUpper(team)
	position = strings.ToUpper(position)
	if surname == "" || team == "" || team == "FA" || position == "" {
		return "", false
	}

	var candidates []string
	for id, rp := range registry {
		if Normalize(rp.LastName) == surname &&
			strings.ToUpper(rp.Team) == team &&
			strings.ToUpper(rp.Position) == position {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	return "", false
}

// lastToken returns the final space-delimited token of a normalized key.
func lastToken(key string) string {
	if i := strings.LastIndexByte(key, ' '); i >= 0 {
		return key[i+1:]
	}
	return key
}
