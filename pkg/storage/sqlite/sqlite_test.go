package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evershine/storefront-core/pkg/storage"
	"github.com/evershine/storefront-core/pkg/storage/sqlite"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	_, err = store.Get(ctx, storage.KeyCart)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyCart, []byte(`[{"quantity":1}]`)))
	value, err := store.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"quantity":1}]`), value)

	// Set overwrites.
	require.NoError(t, store.Set(ctx, storage.KeyCart, []byte(`[]`)))
	value, err = store.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, store.Delete(ctx, storage.KeyCart))
	_, err = store.Get(ctx, storage.KeyCart)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyCart, []byte("cart")))
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("user")))
	require.NoError(t, store.Delete(ctx, storage.KeyCart))

	value, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, []byte("user"), value)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	ctx := context.Background()

	store, err := sqlite.New(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte(`{"id":"1"}`)))
	require.NoError(t, store.Close())

	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), value)
}
