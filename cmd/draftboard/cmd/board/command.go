// Package board implements the board command: the live view of the ranked
// cheat sheet, with drafted players removed from the available sections.
package board

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/draftkit/draftboard"
)

// AppContext provides the app dependencies the board command needs.
type AppContext interface {
	Logger() *zerolog.Logger
	OpenBoard(csvPath, draftID string) (draftboard.Board, error)
	ResolveLeague(name string) (string, error)
}

// NewCommand creates the board command.
func NewCommand(app AppContext) *cobra.Command {
	var (
		csvPath     string
		draftID     string
		league      string
		perPosition int
		overall     int
		watch       bool
	)

	cmd := &cobra.Command{
		Use:     "board",
		GroupID: "draft",
		Short:   "Show the draft board for a rankings file",
		Long: `Board loads a rankings CSV, resolves the ranked players against the
Sleeper registry, and prints the top available players overall and per
position. With a draft id (or a saved league) the live pick feed is applied
first, so drafted players drop off the board.

With --watch the board refreshes whenever new picks arrive, until
interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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
			app.Logger().Debug().
				Int("matched", matched).
				Int("unmatched", len(unmatched)).
				Msg("player resolution complete")

			if b.DraftID() != "" {
				if err := b.SyncPicks(ctx); err != nil {
					return err
				}
			}

			if watch {
				return watchBoard(ctx, cmd.OutOrStdout(), app.Logger(), b, perPosition, overall)
			}

			render(cmd.OutOrStdout(), b, perPosition, overall)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "rankings CSV file (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().StringVar(&draftID, "draft", "", "Sleeper draft id used to flag drafted players")
	cmd.Flags().StringVar(&league, "league", "", "saved league whose draft id should be used")
	cmd.Flags().IntVar(&perPosition, "per-position", 3, "players shown per position")
	cmd.Flags().IntVar(&overall, "overall", 5, "players shown in the overall section")
	cmd.Flags().BoolVar(&watch, "watch", false, "refresh the board as picks come in")

	return cmd
}
