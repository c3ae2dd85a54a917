// Package player implements the player command: lookup of a single ranked
// player by name, with registry details merged in.
package player

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/draftkit/draftboard"
	"github.com/draftkit/draftboard/pkg/constants"
	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/players"
)

// AppContext provides the app dependencies the player command needs.
type AppContext interface {
	Logger() *zerolog.Logger
	OpenBoard(csvPath, draftID string) (draftboard.Board, error)
}

// NewCommand creates the player command.
func NewCommand(app AppContext) *cobra.Command {
	var (
		csvPath string
		draftID string
	)

	cmd := &cobra.Command{
		Use:     "player [name]",
		GroupID: "draft",
		Short:   "Look up a ranked player by name",
		Long: `Player finds the first ranked player whose name contains the query,
case-insensitively, and prints their ranking details together with the
matched Sleeper registry entry (status, injury state, notes).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)
			defer cancel()
			query := strings.Join(args, " ")

			b, err := app.OpenBoard(csvPath, draftID)
			if err != nil {
				return err
			}
			if _, _, err := b.Resolve(ctx); err != nil {
				return err
			}
			if b.DraftID() != "" {
				if err := b.SyncPicks(ctx); err != nil {
					return err
				}
			}

			p := players.Search(b.Players(), query)
			if p == nil {
				return errors.NewNotFoundError("player", query)
			}

			printPlayer(cmd.OutOrStdout(), p, b.Registry())
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "rankings CSV file (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().StringVar(&draftID, "draft", "", "Sleeper draft id used to flag drafted players")

	return cmd
}

func printPlayer(w io.Writer, p *players.Player, registry players.Registry) {
	fmt.Fprintf(w, "%s\n", p.Name)
	fmt.Fprintf(w, "  overall rank:  %d\n", p.OverallRank)
	fmt.Fprintf(w, "  position:      %s%d\n", p.Position, p.PositionRank)
	fmt.Fprintf(w, "  team:          %s\n", p.Team)
	if p.Tier > 0 {
		fmt.Fprintf(w, "  tier:          %d\n", p.Tier)
	}
	if p.ByeWeek > 0 {
		fmt.Fprintf(w, "  bye week:      %d\n", p.ByeWeek)
	}
	if p.SOSSeason != "" {
		fmt.Fprintf(w, "  sos season:    %s\n", p.SOSSeason)
	}
	if p.ECRvsADP != 0 {
		fmt.Fprintf(w, "  ecr vs adp:    %+d\n", p.ECRvsADP)
	}
	fmt.Fprintf(w, "  drafted:       %v\n", p.Drafted)

	if p.SleeperID == "" {
		fmt.Fprintf(w, "  sleeper:       unmatched\n")
		return
	}
	fmt.Fprintf(w, "  sleeper id:    %s\n", p.SleeperID)
	rp, ok := registry[p.SleeperID]
	if !ok {
		return
	}
	if rp.Status != "" {
		fmt.Fprintf(w, "  status:        %s\n", rp.Status)
	}
	if rp.InjuryStatus != "" {
		fmt.Fprintf(w, "  injury:        %s\n", rp.InjuryStatus)
	}
	if rp.InjuryNotes != "" {
		fmt.Fprintf(w, "  injury notes:  %s\n", rp.InjuryNotes)
	}
}
