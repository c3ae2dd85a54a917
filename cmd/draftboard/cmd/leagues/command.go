// Package leagues implements the leagues command group: saved league
// bookmarks so a draft can be rejoined by name instead of pasting its id.
package leagues

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	leaguestore "github.com/draftkit/draftboard/pkg/leagues"
)

// AppContext provides the app dependencies the leagues commands need.
type AppContext interface {
	Logger() *zerolog.Logger
	LeaguesPath() string
}

// NewCommand creates the leagues command with its subcommands.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leagues",
		GroupID: "management",
		Short:   "Manage saved league bookmarks",
		Long: `Leagues stores named bookmarks for Sleeper drafts: a league name, the
draft URL, and the draft id extracted from it. Other commands accept
--league <name> to pull the draft id from a bookmark.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newRemoveCommand(app))
	cmd.AddCommand(newUseCommand(app))

	return cmd
}

func newAddCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [draft-url]",
		Short: "Save a league bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, draftURL := args[0], args[1]

			draftID, ok := leaguestore.DraftIDFromURL(draftURL)
			if !ok {
				return fmt.Errorf("no draft id found in %q", draftURL)
			}

			store, err := leaguestore.NewStore(app.LeaguesPath())
			if err != nil {
				return err
			}
			if err := store.Add(name, draftURL, draftID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved league %q with draft id %s\n", name, draftID)
			return nil
		},
	}
}

func newListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved leagues, most recently used first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := leaguestore.NewStore(app.LeaguesPath())
			if err != nil {
				return err
			}

			all := store.List()
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved leagues")
				return nil
			}
			for _, lg := range all {
				lastUsed := "never"
				if !lg.LastUsed.IsZero() {
					lastUsed = lg.LastUsed.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s draft %-16s last used %s\n", lg.Name, lg.DraftID, lastUsed)
			}
			return nil
		},
	}
}

func newRemoveCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Delete a saved league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := leaguestore.NewStore(app.LeaguesPath())
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed league %q\n", args[0])
			return nil
		},
	}
}

func newUseCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "use [name]",
		Short: "Mark a league as used and print its draft id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := leaguestore.NewStore(app.LeaguesPath())
			if err != nil {
				return err
			}
			lg, err := store.Get(args[0])
			if err != nil {
				return err
			}
			if err := store.MarkUsed(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lg.DraftID)
			return nil
		},
	}
}
