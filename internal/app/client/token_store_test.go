package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTokenStore(t *testing.T) *TokenStore {
	t.Helper()

	store, err := NewTokenStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestTokenStore_SaveAndLoad(t *testing.T) {
	store := newTestTokenStore(t)

	require.NoError(t, store.Save("token-abc"))

	token, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "token-abc", token)
}

func TestTokenStore_SaveReplacesPrevious(t *testing.T) {
	store := newTestTokenStore(t)

	require.NoError(t, store.Save("velho"))
	require.NoError(t, store.Save("novo"))

	token, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "novo", token)
}

func TestTokenStore_Load_Empty(t *testing.T) {
	store := newTestTokenStore(t)

	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestTokenStore_Clear(t *testing.T) {
	store := newTestTokenStore(t)

	require.NoError(t, store.Save("token-abc"))
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)
}
