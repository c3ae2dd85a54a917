package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/draftkit/draftboard/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(WithBaseURL(server.URL))
}

func TestPlayers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/nfl", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"7564": {"full_name": "Justin Jefferson", "first_name": "Justin", "last_name": "Jefferson", "team": "MIN", "position": "WR", "status": "Active"},
			"4199": {"full_name": "Hollywood Brown", "last_name": "Brown", "team": "KC", "position": "WR", "injury_status": "Questionable"}
		}`))
	})

	registry, err := client.Players(context.Background())
	require.NoError(t, err)
	require.Len(t, registry, 2)

	jj := registry["7564"]
	assert.Equal(t, "Justin Jefferson", jj.FullName)
	assert.Equal(t, "MIN", jj.Team)
	assert.Equal(t, "Active", jj.Status)

	brown := registry["4199"]
	assert.Equal(t, "Questionable", brown.InjuryStatus)
}

func TestDraftPicks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/draft/12345/picks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"player_id": "7564", "picked_by": "user-1", "round": 1},
			{"player_id": "4199", "picked_by": "user-2", "round": 1},
			{"player_id": "", "picked_by": "user-3", "round": 2}
		]`))
	})

	picks, err := client.DraftPicks(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, 2, picks.Len())
	assert.True(t, picks.Has("7564"))
	assert.True(t, picks.Has("4199"))
}

func TestDraftPicksEmptyID(t *testing.T) {
	client := NewClient()
	_, err := client.DraftPicks(context.Background(), "")
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestAPIErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "draft not found", http.StatusNotFound)
	})

	_, err := client.DraftPicks(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *pkgerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := client.Players(context.Background())
	assert.Error(t, err)
}
