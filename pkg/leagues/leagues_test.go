package leagues

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/draftkit/draftboard/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "leagues.yaml"))
	require.NoError(t, err)
	return store
}

func TestStoreAddAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add("office league", "https://sleeper.com/draft/nfl/123", "123"))

	league, err := store.Get("office league")
	require.NoError(t, err)
	assert.Equal(t, "123", league.DraftID)
	assert.False(t, league.CreatedAt.IsZero())

	// Duplicate names are rejected
	err = store.Add("office league", "other", "456")
	assert.True(t, pkgerrors.IsAlreadyExists(err))
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.yaml")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Add("dynasty", "https://sleeper.com/draft/nfl/999", "999"))

	// A fresh store on the same path sees the saved bookmark.
	reopened, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
	league, err := reopened.Get("dynasty")
	require.NoError(t, err)
	assert.Equal(t, "999", league.DraftID)
}

func TestStoreUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Add("redraft", "url-1", "111"))

	require.NoError(t, store.Update("redraft", "url-2", "222"))
	league, err := store.Get("redraft")
	require.NoError(t, err)
	assert.Equal(t, "222", league.DraftID)

	require.NoError(t, store.Delete("redraft"))
	_, err = store.Get("redraft")
	assert.True(t, pkgerrors.IsNotFound(err))

	assert.True(t, pkgerrors.IsNotFound(store.Delete("redraft")))
	assert.True(t, pkgerrors.IsNotFound(store.Update("redraft", "x", "y")))
}

func TestStoreListOrdersByLastUsed(t *testing.T) {
	store := newTestStore(t)

	clock := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	require.NoError(t, store.Add("first", "u1", "1"))
	require.NoError(t, store.Add("second", "u2", "2"))
	require.NoError(t, store.Add("third", "u3", "3"))
	require.NoError(t, store.MarkUsed("first"))

	names := make([]string, 0, 3)
	for _, l := range store.List() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"first", "third", "second"}, names)
}

func TestStoreExportImport(t *testing.T) {
	src := newTestStore(t)
	require.NoError(t, src.Add("keeper", "https://sleeper.com/draft/nfl/42", "42"))

	data, err := src.Export()
	require.NoError(t, err)

	dst := newTestStore(t)
	require.NoError(t, dst.Import(data))

	league, err := dst.Get("keeper")
	require.NoError(t, err)
	assert.Equal(t, "42", league.DraftID)
}

func TestStoreImportRejectsGarbage(t *testing.T) {
	store := newTestStore(t)
	err := store.Import([]byte("{not yaml: ["))
	assert.Error(t, err)
}
