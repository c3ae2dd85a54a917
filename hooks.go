package draftboard

import (
	"sync"

	"github.com/draftkit/draftboard/pkg/players"
)

// PlayerDraftedHook is called when a player's drafted flag flips to true
// during a pick sync.
type PlayerDraftedHook func(player *players.Player)

// hooks manages event callbacks for board changes.
type hooks struct {
	mu              sync.RWMutex
	onPlayerDrafted []PlayerDraftedHook
}

// newHooks creates a new hooks instance.
func newHooks() *hooks {
	return &hooks{}
}

// OnPlayerDrafted registers a callback for newly drafted players.
func (b *board) OnPlayerDrafted(fn PlayerDraftedHook) {
	b.hooks.mu.Lock()
	defer b.hooks.mu.Unlock()
	b.hooks.onPlayerDrafted = append(b.hooks.onPlayerDrafted, fn)
}

// triggerPlayerDrafted invokes all registered callbacks for a player.
func (h *hooks) triggerPlayerDrafted(player *players.Player) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onPlayerDrafted {
		hook(player)
	}
}
