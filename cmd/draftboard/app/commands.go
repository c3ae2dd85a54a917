package app

import (
	"github.com/spf13/cobra"

	"github.com/draftkit/draftboard/cmd/draftboard/cmd/board"
	"github.com/draftkit/draftboard/cmd/draftboard/cmd/leagues"
	"github.com/draftkit/draftboard/cmd/draftboard/cmd/matches"
	"github.com/draftkit/draftboard/cmd/draftboard/cmd/player"
	"github.com/draftkit/draftboard/cmd/draftboard/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Draft commands
	rootCmd.AddCommand(board.NewCommand(a))
	rootCmd.AddCommand(matches.NewCommand(a))
	rootCmd.AddCommand(player.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(leagues.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
