// Package draftboard manages a live fantasy draft session: ranked players
// loaded from a rankings feed, the Sleeper player registry they are resolved
// against, and the set of drafted identifiers that is refreshed as the draft
// progresses. The resolution and reconciliation logic itself lives in
// pkg/resolve; this package owns the session state around it.
package draftboard

import (
	"context"
	"sync"
	"time"

	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/players"
	"github.com/draftkit/draftboard/pkg/resolve"
)

// RegistrySource supplies player registry snapshots.
type RegistrySource interface {
	Players(ctx context.Context) (players.Registry, error)
}

// PicksSource supplies the drafted pick set for a draft.
type PicksSource interface {
	DraftPicks(ctx context.Context, draftID string) (players.PickSet, error)
}

// Board is a draft session over a fixed set of ranked players.
type Board interface {
	// Players returns the ranked players, annotated with resolution and
	// drafted state as the session progresses.
	Players() []*players.Player

	// Registry returns the most recently fetched registry snapshot.
	Registry() players.Registry

	// Picks returns the most recently fetched drafted pick set.
	Picks() players.PickSet

	// Resolve fetches a fresh registry snapshot and runs identity
	// resolution over every unresolved player. It returns the number of
	// players matched during this pass and diagnostics for the rest.
	Resolve(ctx context.Context) (int, []resolve.Unmatched, error)

	// SetDraftID configures the draft to sync picks from.
	SetDraftID(id string)

	// DraftID returns the configured draft id, if any.
	DraftID() string

	// SyncPicks fetches the current pick list and re-derives every
	// player's drafted flag from it.
	SyncPicks(ctx context.Context) error

	// UnmatchedDrafted reports drafted registry players that no drafted
	// ranked player corresponds to.
	UnmatchedDrafted() []resolve.UnlistedPick

	// OnPlayerDrafted registers a callback invoked for each player whose
	// drafted flag flips to true during a sync.
	OnPlayerDrafted(PlayerDraftedHook)

	// AutoSyncOn begins periodic pick syncing if a draft id is configured.
	AutoSyncOn() error

	// AutoSyncOff stops periodic pick syncing.
	AutoSyncOff() error
}

// board is the internal implementation of the Board interface.
type board struct {
	mu       sync.RWMutex
	players  []*players.Player
	registry players.Registry
	picks    players.PickSet
	draftID  string

	options *options
	hooks   *hooks

	// auto-sync state
	syncTicker *time.Ticker
	syncCancel context.CancelFunc
	stopCh     chan struct{}
}

// New creates a Board over the given ranked players.
func New(list []*players.Player, opts ...Option) (Board, error) {
	b := &board{
		players: list,
		options: defaultOptions(),
		hooks:   newHooks(),
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(b.options); err != nil {
			return nil, err
		}
	}
	b.draftID = b.options.draftID
	return b, nil
}

// Players returns the ranked players.
func (b *board) Players() []*players.Player {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.players
}

// Registry returns the current registry snapshot.
func (b *board) Registry() players.Registry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.registry
}

// Picks returns the current drafted pick set.
func (b *board) Picks() players.PickSet {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.picks
}

// SetDraftID configures the draft to sync picks from.
func (b *board) SetDraftID(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draftID = id
}

// DraftID returns the configured draft id.
func (b *board) DraftID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.draftID
}

// Resolve fetches a fresh registry snapshot, rebuilds the match index, and
// resolves every player that lacks an identifier. If picks are already held
// the drafted flags are re-derived afterward, so a late resolution pass
// still surfaces players that were drafted before it ran.
func (b *board) Resolve(ctx context.Context) (int, []resolve.Unmatched, error) {
	if b.options.registrySource == nil {
		return 0, nil, &errors.ConfigError{Component: "board", Message: "no registry source configured"}
	}

	registry, err := b.options.registrySource.Players(ctx)
	if err != nil {
		return 0, nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.registry = registry

	idx := resolve.BuildIndex(registry)
	matched, unmatched := resolve.Resolve(b.players, idx, registry, b.options.scorer)

	if b.picks.Len() > 0 {
		resolve.ApplyDrafted(b.players, b.picks, registry)
	}
	return matched, unmatched, nil
}

// SyncPicks fetches the current pick list for the configured draft and
// re-derives drafted flags. The fetched set fully replaces the previous one.
func (b *board) SyncPicks(ctx context.Context) error {
	if b.options.picksSource == nil {
		return &errors.ConfigError{Component: "board", Message: "no picks source configured"}
	}
	draftID := b.DraftID()
	if draftID == "" {
		return &errors.ValidationError{Field: "draftID", Message: "no draft id configured"}
	}

	picks, err := b.options.picksSource.DraftPicks(ctx, draftID)
	if err != nil {
		return err
	}

	b.mu.Lock()
	before := draftedSet(b.players)
	b.picks = picks
	resolve.ApplyDrafted(b.players, picks, b.registry)
	newly := newlyDrafted(b.players, before)
	b.mu.Unlock()

	// Hooks run outside the lock; callbacks may call back into the board.
	for _, p := range newly {
		b.hooks.triggerPlayerDrafted(p)
	}
	return nil
}

// UnmatchedDrafted reports drafted registry players with no drafted ranked
// counterpart.
func (b *board) UnmatchedDrafted() []resolve.UnlistedPick {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return resolve.UnmatchedDrafted(b.picks, b.players, b.registry)
}

// draftedSet snapshots which players are currently flagged drafted.
func draftedSet(list []*players.Player) map[*players.Player]struct{} {
	set := make(map[*players.Player]struct{})
	for _, p := range list {
		if p.Drafted {
			set[p] = struct{}{}
		}
	}
	return set
}

// newlyDrafted returns players drafted now that were not drafted before.
func newlyDrafted(list []*players.Player, before map[*players.Player]struct{}) []*players.Player {
	var out []*players.Player
	for _, p := range list {
		if p.Drafted {
			if _, was := before[p]; !was {
				out = append(out, p)
			}
		}
	}
	return out
}
