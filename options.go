package draftboard

import (
	"time"

	"github.com/draftkit/draftboard/pkg/constants"
	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/resolve"
)

// Option is a function that configures a Board instance.
type Option func(*options) error

// options holds Board configuration assembled from Options.
type options struct {
	registrySource RegistrySource
	picksSource    PicksSource
	draftID        string
	scorer         resolve.Scorer
	syncInterval   time.Duration
}

// defaultOptions returns the default Board configuration.
func defaultOptions() *options {
	return &options{
		scorer:       resolve.TokenSortRatio,
		syncInterval: constants.DefaultSyncInterval,
	}
}

// WithRegistrySource configures where registry snapshots are fetched from.
func WithRegistrySource(src RegistrySource) Option {
	return func(o *options) error {
		o.registrySource = src
		return nil
	}
}

// WithPicksSource configures where drafted pick sets are fetched from.
func WithPicksSource(src PicksSource) Option {
	return func(o *options) error {
		o.picksSource = src
		return nil
	}
}

// WithDraftID configures the initial draft id to sync picks from.
func WithDraftID(id string) Option {
	return func(o *options) error {
		o.draftID = id
		return nil
	}
}

// WithScorer overrides the similarity scorer used by the fuzzy matching tier.
func WithScorer(scorer resolve.Scorer) Option {
	return func(o *options) error {
		if scorer == nil {
			return &errors.ValidationError{Field: "scorer", Message: "cannot be nil"}
		}
		o.scorer = scorer
		return nil
	}
}

// WithSyncInterval configures how often auto-sync refreshes draft picks.
func WithSyncInterval(interval time.Duration) Option {
	return func(o *options) error {
		if interval <= 0 {
			return &errors.ValidationError{
				Field:   "syncInterval",
				Value:   interval,
				Message: "sync interval must be positive",
			}
		}
		o.syncInterval = interval
		return nil
	}
}
