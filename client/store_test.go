package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStoreRoundTrip(t *testing.T) {
	store := NewMemoryTokenStore()

	_, ok := store.Get()
	require.False(t, ok)

	require.NoError(t, store.Set("tok"))
	token, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	_, ok = store.Get()
	require.False(t, ok)
}

func TestFileTokenStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileTokenStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("persisted-tok"))

	reopened, err := NewFileTokenStore(dir)
	require.NoError(t, err)
	token, ok := reopened.Get()
	require.True(t, ok)
	require.Equal(t, "persisted-tok", token)

	require.NoError(t, reopened.Clear())
	_, ok = reopened.Get()
	require.False(t, ok)

	// Clearing an already-empty store stays quiet.
	require.NoError(t, reopened.Clear())
}
