package board

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/draftkit/draftboard"
	"github.com/draftkit/draftboard/pkg/players"
)

// watchRedrawInterval bounds how often the board is re-rendered while
// watching. Pick syncing itself runs on the board's own interval.
const watchRedrawInterval = 5 * time.Second

// watchBoard keeps the board on screen, re-rendering whenever new picks
// arrived since the last draw. It returns when ctx is cancelled.
func watchBoard(ctx context.Context, w io.Writer, logger *zerolog.Logger, b draftboard.Board, perPosition, overall int) error {
	var dirty atomic.Bool

	b.OnPlayerDrafted(func(p *players.Player) {
		logger.Info().
			Str("player", p.Name).
			Str("team", p.Team).
			Str("position", p.Position).
			Msg("player drafted")
		dirty.Store(true)
	})

	if err := b.AutoSyncOn(); err != nil {
		return err
	}
	defer func() {
		if err := b.AutoSyncOff(); err != nil {
			logger.Error().Err(err).Msg("failed to stop pick syncing")
		}
	}()

	render(w, b, perPosition, overall)

	ticker := time.NewTicker(watchRedrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return nil
		case <-ticker.C:
			if dirty.Swap(false) {
				fmt.Fprintln(w)
				render(w, b, perPosition, overall)
			}
		}
	}
}
