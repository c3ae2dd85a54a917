package draftboard

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/draftkit/draftboard/pkg/constants"
	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/logging"
)

// AutoSyncOn begins periodic pick syncing at the configured interval.
// Any previous auto-sync is stopped first, so calling it twice is safe.
func (b *board) AutoSyncOn() error {
	if b.options.syncInterval <= 0 {
		return &errors.ValidationError{
			Field:   "syncInterval",
			Value:   b.options.syncInterval,
			Message: "sync interval must be positive",
		}
	}
	if b.DraftID() == "" {
		return &errors.ValidationError{Field: "draftID", Message: "no draft id configured"}
	}

	// Stop any existing auto-sync to prevent leaking its goroutine
	if err := b.AutoSyncOff(); err != nil {
		return err
	}

	// Recreate stopCh since it was closed in AutoSyncOff
	b.stopCh = make(chan struct{})
	b.syncTicker = time.NewTicker(b.options.syncInterval)

	ctx, cancel := context.WithCancel(context.Background())
	b.syncCancel = cancel

	go func(parentCtx context.Context) {
		for {
			select {
			case <-b.syncTicker.C:
				syncCtx, syncCancel := context.WithTimeout(parentCtx, constants.SyncContextTimeout)
				err := b.SyncPicks(syncCtx)
				syncCancel()

				if err != nil {
					if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
						return
					}
					// Transient feed errors are logged and the loop continues
					logging.Error().Err(err).Msg("Auto-sync failed")
				}
			case <-parentCtx.Done():
				return
			case <-b.stopCh:
				return
			}
		}
	}(ctx)

	return nil
}

// AutoSyncOff stops periodic pick syncing.
func (b *board) AutoSyncOff() error {
	if b.syncTicker != nil {
		b.syncTicker.Stop()
		b.syncTicker = nil
	}
	if b.syncCancel != nil {
		b.syncCancel()
		b.syncCancel = nil
	}
	select {
	case <-b.stopCh:
		// Already closed
	default:
		close(b.stopCh)
	}
	return nil
}
