package rankings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `RK,TIERS,PLAYER NAME,TEAM,POS,BYE WEEK,SOS SEASON,ECR VS. ADP
1,1,Justin Jefferson,MIN,WR1,13,3 out of 5 stars,0
2,1,Bijan Robinson,ATL,RB1,5,4 out of 5 stars,+2
3,2,Ja'Marr Chase,CIN,WR2,-,-,−
4,2,Broken Row,DAL,???,7,2 out of 5 stars,1
5,2,Josh Allen,BUF,QB1,12,1 out of 5 stars,-3
`

func TestParse(t *testing.T) {
	list, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// The row with the unparseable position code is excluded.
	require.Len(t, list, 4)

	jj := list[0]
	assert.Equal(t, "Justin Jefferson", jj.Name)
	assert.Equal(t, "MIN", jj.Team)
	assert.Equal(t, "WR", jj.Position)
	assert.Equal(t, 1, jj.OverallRank)
	assert.Equal(t, 1, jj.PositionRank)
	assert.Equal(t, 13, jj.ByeWeek)
	assert.Equal(t, "3/5", jj.SOSSeason)

	bijan := list[1]
	assert.Equal(t, "RB", bijan.Position)
	assert.Equal(t, 2, bijan.ECRvsADP, "leading + is tolerated")

	chase := list[2]
	assert.Equal(t, 0, chase.ByeWeek, `"-" parses to the default`)

	allen := list[3]
	assert.Equal(t, -3, allen.ECRvsADP)
	assert.Equal(t, "QB", allen.Position)
	assert.Equal(t, 1, allen.PositionRank)
}

func TestParseMissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("RK,PLAYER NAME\n1,Somebody\n"))
	assert.Error(t, err)
}

func TestParseEmptyBody(t *testing.T) {
	list, err := Parse(strings.NewReader("RK,TIERS,PLAYER NAME,TEAM,POS,BYE WEEK,SOS SEASON,ECR VS. ADP\n"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseIntField(t *testing.T) {
	tests := []struct {
		input string
		def   int
		want  int
	}{
		{"7", 0, 7},
		{"+12", 0, 12},
		{"-4", 0, -4},
		{"", 9, 9},
		{"-", 9, 9},
		{"N/A", 9, 9},
		{"about -17 or so", 0, -17},
		{"garbage", 3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseIntField(tt.input, tt.def), "parseIntField(%q)", tt.input)
	}
}
