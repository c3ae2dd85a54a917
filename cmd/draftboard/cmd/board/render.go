package board

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/draftkit/draftboard"
	"github.com/draftkit/draftboard/pkg/players"
)

// positionOrder fixes section order in the rendered board.
var positionOrder = []string{"RB", "WR", "TE", "QB"}

var positionNames = map[string]string{
	"RB": "running backs",
	"WR": "wide receivers",
	"TE": "tight ends",
	"QB": "quarterbacks",
}

var titleCaser = cases.Title(language.AmericanEnglish)

// sectionName returns the printable heading for a position group.
func sectionName(pos string) string {
	if name, ok := positionNames[pos]; ok {
		return titleCaser.String(name)
	}
	return pos
}

func render(w io.Writer, b draftboard.Board, perPosition, overall int) {
	list := b.Players()
	registry := b.Registry()

	fmt.Fprintln(w, "Top available overall")
	top := players.TopAvailable(list, overall)
	if len(top) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range top {
		fmt.Fprintln(w, playerLine(p, registry))
	}

	for _, pos := range positionOrder {
		fmt.Fprintf(w, "\nTop Available %s\n", sectionName(pos))
		byPos := players.TopByPosition(list, pos, perPosition)
		if len(byPos) == 0 {
			fmt.Fprintln(w, "  (none)")
			continue
		}
		for _, p := range byPos {
			fmt.Fprintln(w, playerLine(p, registry))
		}
	}

	drafted := players.Drafted(list)
	if len(drafted) > 0 {
		fmt.Fprintf(w, "\nDrafted (%d)\n", len(drafted))
		for _, p := range drafted {
			fmt.Fprintln(w, playerLine(p, registry))
		}
	}
}

// playerLine renders one board row: rank, name, team, position rank, and any
// tier, bye, or injury annotations that are known.
func playerLine(p *players.Player, registry players.Registry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %3d. %-24s %-3s %s%d", p.OverallRank, p.Name, p.Team, p.Position, p.PositionRank)
	if p.Tier > 0 {
		fmt.Fprintf(&b, "  tier %d", p.Tier)
	}
	if p.ByeWeek > 0 {
		fmt.Fprintf(&b, "  bye %d", p.ByeWeek)
	}
	if rp, ok := registry[p.SleeperID]; ok && rp.InjuryStatus != "" {
		fmt.Fprintf(&b, "  [%s]", rp.InjuryStatus)
	}
	return b.String()
}
