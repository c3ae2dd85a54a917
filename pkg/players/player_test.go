package players

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBoard() []*Player {
	return []*Player{
		{Name: "Justin Jefferson", Team: "MIN", Position: "WR", OverallRank: 1},
		{Name: "Bijan Robinson", Team: "ATL", Position: "RB", OverallRank: 2},
		{Name: "CeeDee Lamb", Team: "DAL", Position: "WR", OverallRank: 3},
		{Name: "Breece Hall", Team: "NYJ", Position: "RB", OverallRank: 4, Drafted: true},
		{Name: "Josh Allen", Team: "BUF", Position: "QB", OverallRank: 5},
	}
}

func TestTopByPosition(t *testing.T) {
	board := testBoard()

	wrs := TopByPosition(board, "WR", 3)
	assert.Len(t, wrs, 2)
	assert.Equal(t, "Justin Jefferson", wrs[0].Name)
	assert.Equal(t, "CeeDee Lamb", wrs[1].Name)

	// Drafted players are excluded
	rbs := TopByPosition(board, "RB", 3)
	assert.Len(t, rbs, 1)
	assert.Equal(t, "Bijan Robinson", rbs[0].Name)

	// Limit is respected
	assert.Len(t, TopByPosition(board, "WR", 1), 1)
}

func TestTopAvailable(t *testing.T) {
	board := testBoard()

	top := TopAvailable(board, 3)
	assert.Len(t, top, 3)
	assert.Equal(t, "Justin Jefferson", top[0].Name)
	for _, p := range top {
		assert.False(t, p.Drafted)
	}
}

func TestDrafted(t *testing.T) {
	board := testBoard()

	drafted := Drafted(board)
	assert.Len(t, drafted, 1)
	assert.Equal(t, "Breece Hall", drafted[0].Name)
}

func TestSearch(t *testing.T) {
	board := testBoard()

	assert.Equal(t, "CeeDee Lamb", Search(board, "lamb").Name)
	assert.Equal(t, "Josh Allen", Search(board, "JOSH").Name)
	assert.Nil(t, Search(board, "mahomes"))
}

func TestPickSet(t *testing.T) {
	set := NewPickSet("7564", "4199")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has("7564"))
	assert.False(t, set.Has("1111"))

	set.Add("1111")
	assert.True(t, set.Has("1111"))
}
