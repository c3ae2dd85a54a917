package draftboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftboard/pkg/players"
)

// stubRegistry is a RegistrySource serving a fixed snapshot.
type stubRegistry struct {
	registry players.Registry
	err      error
}

func (s *stubRegistry) Players(_ context.Context) (players.Registry, error) {
	return s.registry, s.err
}

// stubPicks is a PicksSource serving a swappable pick set.
type stubPicks struct {
	picks players.PickSet
	err   error
}

func (s *stubPicks) DraftPicks(_ context.Context, _ string) (players.PickSet, error) {
	return s.picks, s.err
}

func testRegistry() players.Registry {
	return players.Registry{
		"7564": {FullName: "Justin Jefferson", LastName: "Jefferson", Team: "MIN", Position: "WR"},
		"4199": {FullName: "Hollywood Brown", LastName: "Brown", Team: "KC", Position: "WR"},
	}
}

func testRankings() []*players.Player {
	return []*players.Player{
		{Name: "Justin Jefferson", Team: "MIN", Position: "WR", OverallRank: 1},
		{Name: "Marquise Brown", Team: "KC", Position: "WR", OverallRank: 2},
	}
}

func TestBoardResolve(t *testing.T) {
	list := testRankings()
	b, err := New(list,
		WithRegistrySource(&stubRegistry{registry: testRegistry()}),
	)
	require.NoError(t, err)

	matched, unmatched, err := b.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, matched)
	assert.Empty(t, unmatched)
	assert.Equal(t, "7564", list[0].SleeperID) // exact raw name
	assert.Equal(t, "4199", list[1].SleeperID) // structural fallback
}

func TestBoardResolveWithoutSource(t *testing.T) {
	b, err := New(testRankings())
	require.NoError(t, err)

	_, _, err = b.Resolve(context.Background())
	assert.Error(t, err)
}

func TestBoardSyncPicks(t *testing.T) {
	list := testRankings()
	picks := &stubPicks{picks: players.NewPickSet("7564")}
	b, err := New(list,
		WithRegistrySource(&stubRegistry{registry: testRegistry()}),
		WithPicksSource(picks),
		WithDraftID("12345"),
	)
	require.NoError(t, err)

	var draftedNames []string
	b.OnPlayerDrafted(func(p *players.Player) {
		draftedNames = append(draftedNames, p.Name)
	})

	_, _, err = b.Resolve(context.Background())
	require.NoError(t, err)

	require.NoError(t, b.SyncPicks(context.Background()))
	assert.True(t, list[0].Drafted)
	assert.False(t, list[1].Drafted)
	assert.Equal(t, []string{"Justin Jefferson"}, draftedNames)

	// Same set again: no new hook invocations.
	require.NoError(t, b.SyncPicks(context.Background()))
	assert.Len(t, draftedNames, 1)

	// A replacement set fully supersedes the old one.
	picks.picks = players.NewPickSet()
	require.NoError(t, b.SyncPicks(context.Background()))
	assert.False(t, list[0].Drafted)
}

func TestBoardSyncPicksRequiresDraftID(t *testing.T) {
	b, err := New(testRankings(),
		WithPicksSource(&stubPicks{picks: players.NewPickSet()}),
	)
	require.NoError(t, err)

	assert.Error(t, b.SyncPicks(context.Background()))

	b.SetDraftID("999")
	assert.Equal(t, "999", b.DraftID())
	assert.NoError(t, b.SyncPicks(context.Background()))
}

func TestBoardResolveReappliesPicks(t *testing.T) {
	// Picks arrive before resolution: a later resolve pass must still
	// flag the drafted player.
	list := testRankings()
	b, err := New(list,
		WithRegistrySource(&stubRegistry{registry: testRegistry()}),
		WithPicksSource(&stubPicks{picks: players.NewPickSet("7564")}),
		WithDraftID("12345"),
	)
	require.NoError(t, err)

	require.NoError(t, b.SyncPicks(context.Background()))
	assert.False(t, list[0].Drafted, "unresolved and no registry yet")

	_, _, err = b.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, list[0].Drafted)
}

func TestBoardUnmatchedDrafted(t *testing.T) {
	registry := testRegistry()
	registry["9001"] = players.RegistryPlayer{FullName: "Deep Sleeper", Team: "JAX", Position: "TE"}

	b, err := New(testRankings(),
		WithRegistrySource(&stubRegistry{registry: registry}),
		WithPicksSource(&stubPicks{picks: players.NewPickSet("9001")}),
		WithDraftID("12345"),
	)
	require.NoError(t, err)

	_, _, err = b.Resolve(context.Background())
	require.NoError(t, err)
	require.NoError(t, b.SyncPicks(context.Background()))

	report := b.UnmatchedDrafted()
	require.Len(t, report, 1)
	assert.Equal(t, "9001", report[0].ID)
}

func TestAutoSyncValidation(t *testing.T) {
	b, err := New(testRankings(),
		WithPicksSource(&stubPicks{picks: players.NewPickSet()}),
	)
	require.NoError(t, err)

	// No draft id configured
	assert.Error(t, b.AutoSyncOn())

	b.SetDraftID("12345")
	require.NoError(t, b.AutoSyncOn())
	require.NoError(t, b.AutoSyncOff())
	// Stopping twice is safe
	require.NoError(t, b.AutoSyncOff())
}

func TestWithSyncIntervalValidation(t *testing.T) {
	_, err := New(testRankings(), WithSyncInterval(-time.Second))
	assert.Error(t, err)

	_, err = New(testRankings(), WithScorer(nil))
	assert.Error(t, err)
}
