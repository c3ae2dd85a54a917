// Package app provides the application context and dependency management
// for the draftboard CLI. It centralizes configuration, logging, and the
// construction of draft board sessions for the command handlers.
package app

import (
	"github.com/rs/zerolog"

	"github.com/draftkit/draftboard"
	"github.com/draftkit/draftboard/internal/sources/rankings"
	"github.com/draftkit/draftboard/internal/sources/sleeper"
	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/leagues"
)

// App represents the draftboard application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, &errors.ConfigError{Component: "app", Message: "load config", Err: err}
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// LeaguesPath returns the location of the league bookmark file.
func (a *App) LeaguesPath() string {
	return a.config.LeaguesFile
}

// OpenBoard loads the ranked list from csvPath and wires a board backed by
// the Sleeper API. draftID may be empty; picks cannot be synced until one
// is set on the board.
func (a *App) OpenBoard(csvPath, draftID string) (draftboard.Board, error) {
	list, err := rankings.ParseFile(csvPath)
	if err != nil {
		return nil, err
	}

	var clientOpts []sleeper.Option
	if a.config.SleeperURL != "" {
		clientOpts = append(clientOpts, sleeper.WithBaseURL(a.config.SleeperURL))
	}
	client := sleeper.NewClient(clientOpts...)

	boardOpts := []draftboard.Option{
		draftboard.WithRegistrySource(client),
		draftboard.WithPicksSource(client),
	}
	if draftID != "" {
		boardOpts = append(boardOpts, draftboard.WithDraftID(draftID))
	}

	return draftboard.New(list, boardOpts...)
}

// ResolveLeague looks up a saved league bookmark by name, marks it as used,
// and returns its draft id.
func (a *App) ResolveLeague(name string) (string, error) {
	store, err := leagues.NewStore(a.config.LeaguesFile)
	if err != nil {
		return "", err
	}
	league, err := store.Get(name)
	if err != nil {
		return "", err
	}
	if err := store.MarkUsed(name); err != nil {
		return "", err
	}
	return league.DraftID, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
