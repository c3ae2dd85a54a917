// Package rankings parses FantasyPros-style ranking CSV exports into ranked
// players. It is a collaborator of the resolution core: malformed rows are
// excluded here, so the core can assume every player it receives has the
// required fields populated.
package rankings

import (
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/draftkit/draftboard/pkg/errors"
	"github.com/draftkit/draftboard/pkg/logging"
	"github.com/draftkit/draftboard/pkg/players"
)

// Column headers expected in the CSV export.
const (
	colRank     = "RK"
	colTier     = "TIERS"
	colName     = "PLAYER NAME"
	colTeam     = "TEAM"
	colPosition = "POS"
	colBye      = "BYE WEEK"
	colSOS      = "SOS SEASON"
	colECR      = "ECR VS. ADP"
)

var (
	// positionRe splits combined position codes like "WR12" into the
	// position and the position rank.
	positionRe = regexp.MustCompile(`^([A-Z]+)(\d+)$`)

	// intRe extracts the first signed integer substring from messy values.
	intRe = regexp.MustCompile(`-?\d+`)

	// starsRe extracts the star count from "N out of 5 stars" strings.
	starsRe = regexp.MustCompile(`\d+`)
)

// ParseFile reads and parses a ranking CSV from disk.
func ParseFile(path string) ([]*players.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads ranking rows from r. Rows missing required fields or with an
// unparseable rank or position are skipped with a warning, never fatal; an
// error is returned only when the header itself is unusable.
func Parse(r io.Reader) ([]*players.Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.WrapParse("csv", "rankings header", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colRank, colName, colTeam, colPosition} {
		if _, ok := columns[required]; !ok {
			return nil, &errors.ParseError{
				Format:  "csv",
				Source:  "rankings header",
				Message: "missing required column " + required,
			}
		}
	}

	var list []*players.Player
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logging.Warn().Err(err).Int("line", line).Msg("Skipping unreadable ranking row")
			continue
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		pos := positionRe.FindStringSubmatch(field(colPosition))
		if pos == nil {
			logging.Warn().Int("line", line).Str("pos", field(colPosition)).Msg("Skipping row with unparseable position")
			continue
		}
		positionRank, _ := strconv.Atoi(pos[2])

		overallRank, err := strconv.Atoi(field(colRank))
		if err != nil || field(colName) == "" {
			logging.Warn().Int("line", line).Msg("Skipping row with missing rank or name")
			continue
		}

		list = append(list, &players.Player{
			Name:         field(colName),
			Team:         field(colTeam),
			Position:     pos[1],
			OverallRank:  overallRank,
			PositionRank: positionRank,
			Tier:         parseIntField(field(colTier), 0),
			ByeWeek:      parseIntField(field(colBye), 0),
			SOSSeason:    parseSOS(field(colSOS)),
			ECRvsADP:     parseIntField(field(colECR), 0),
		})
	}

	logging.Info().Int("players", len(list)).Msg("Rankings loaded")
	return list, nil
}

// parseIntField parses an integer that may be empty, "-", "N/A", or carry a
// leading "+". When direct parsing fails, the first signed integer substring
// is used; otherwise the default is returned.
func parseIntField(value string, def int) int {
	s := strings.TrimSpace(value)
	switch s {
	case "", "-", "NA", "N/A":
		return def
	}
	s = strings.TrimPrefix(s, "+")
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if m := intRe.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return def
}

// parseSOS condenses "3 out of 5 stars" to "3/5", passing through anything
// it does not recognize.
func parseSOS(value string) string {
	if m := starsRe.FindString(value); m != "" {
		return m + "/5"
	}
	return value
}
