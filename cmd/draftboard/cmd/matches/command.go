// Package matches implements the matches command: resolution diagnostics
// showing how ranked players mapped onto the Sleeper registry, which ones
// did not, and which drafted players the rankings never listed.
package matches

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/draftkit/draftboard"
	"github.com/draftkit/draftboard/pkg/constants"
)

// AppContext provides the app dependencies the matches command needs.
type AppContext interface {
	Logger() *zerolog.Logger
	OpenBoard(csvPath, draftID string) (draftboard.Board, error)
	ResolveLeague(name string) (string, error)
}

// NewCommand creates the matches command.
func NewCommand(app AppContext) *cobra.Command {
	var (
		csvPath string
		draftID string
		league  string
	)

	cmd := &cobra.Command{
		Use:     "matches",
		GroupID: "draft",
		Short:   "Show how ranked players matched the Sleeper registry",
		Long: `Matches resolves every ranked player against the Sleeper registry and
reports the result: how many matched, which did not (with the closest fuzzy
candidate and its score), and, when a draft id is given, which drafted
players the rankings never listed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()
			out := cmd.OutOrStdout()

			if league != "" {
				id, err := app.ResolveLeague(league)
				if err != nil {
					return err
				}
				draftID = id
			}

			b, err := app.OpenBoard(csvPath, draftID)
			if err != nil {
				return err
			}

			matched, unmatched, err := b.Resolve(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Matched %d of %d ranked players\n", matched, len(b.Players()))

			if len(unmatched) > 0 {
				fmt.Fprintf(out, "\nUnmatched (%d)\n", len(unmatched))
				for _, u := range unmatched {
					if u.Best != nil {
						fmt.Fprintf(out, "  %s (%s %s): closest %q, score %d\n",
							u.Player.Name, u.Player.Team, u.Player.Position, u.Best.Key, u.Best.Score)
					} else {
						fmt.Fprintf(out, "  %s (%s %s): no candidates\n",
							u.Player.Name, u.Player.Team, u.Player.Position)
					}
				}
			}

			if b.DraftID() == "" {
				return nil
			}

			if err := b.SyncPicks(ctx); err != nil {
				return err
			}

			unlisted := b.UnmatchedDrafted()
			if len(unlisted) == 0 {
				fmt.Fprintln(out, "\nEvery drafted player is accounted for in the rankings")
				return nil
			}

			fmt.Fprintf(out, "\nDrafted but not listed (%d)\n", len(unlisted))
			for _, pick := range unlisted {
				fmt.Fprintf(out, "  %s (%s %s), id %s\n", pick.FullName, pick.Team, pick.Position, pick.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "rankings CSV file (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().StringVar(&draftID, "draft", "", "Sleeper draft id for the reverse drafted report")
	cmd.Flags().StringVar(&league, "league", "", "saved league whose draft id should be used")

	return cmd
}
