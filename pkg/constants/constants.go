// Package constants provides shared constants used throughout the draftboard codebase.
// This includes timeouts, file permissions, and other configuration values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the Sleeper API
	DefaultHTTPTimeout = 30 * time.Second

	// SyncContextTimeout is the timeout for each pick-sync operation
	SyncContextTimeout = 1 * time.Minute

	// DefaultSyncInterval is the default interval between automatic pick syncs
	DefaultSyncInterval = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Sleeper API endpoints.
const (
	// SleeperBaseURL is the base URL for the Sleeper public API
	SleeperBaseURL = "https://api.sleeper.app/v1"
)
