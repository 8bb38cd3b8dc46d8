package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *SQLiteConfigStore {
	t.Helper()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "nested", "homedash.db"), BusyTimeout: 5}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesFile(t *testing.T) {

	s := openTestStore(t)
	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePermissions), info.Mode().Perm())
}

func TestGetEmpty(t *testing.T) {

	s := openTestStore(t)
	assert.Nil(t, s.Get(context.Background()))
}

func TestSetGetClear(t *testing.T) {

	require := require.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(s.Set(ctx, "http://ha.local:8123/", "tok-1"))
	require.Equal(&domain.ConnectionConfig{URL: "http://ha.local:8123", Token: "tok-1"}, s.Get(ctx))

	// overwrite
	require.NoError(s.Set(ctx, "http://other:8123", "tok-2"))
	require.Equal(&domain.ConnectionConfig{URL: "http://other:8123", Token: "tok-2"}, s.Get(ctx))

	require.NoError(s.Clear(ctx))
	require.Nil(s.Get(ctx))

	// clearing twice is fine
	require.NoError(s.Clear(ctx))
}

func TestGetPartialConfig(t *testing.T) {

	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.db.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES (?, ?)`, KEY_HA_URL, "http://ha")
	require.NoError(t, err)
	assert.Nil(t, s.Get(ctx))
}

func TestPersistsAcrossOpen(t *testing.T) {

	require := require.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "homedash.db")

	s, err := Open(Config{Path: path, BusyTimeout: 5}, zap.NewNop())
	require.NoError(err)
	require.NoError(s.Set(ctx, "http://ha", "tok"))
	require.NoError(s.Close())

	s, err = Open(Config{Path: path, BusyTimeout: 5}, zap.NewNop())
	require.NoError(err)
	defer s.Close()
	require.Equal("tok", s.Get(ctx).Token)
}

func TestStorageErrorAfterClose(t *testing.T) {

	ctx := context.Background()
	s, err := Open(Config{Path: filepath.Join(t.TempDir(), "homedash.db"), BusyTimeout: 5}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	var storageErr *domain.StorageError
	assert.ErrorAs(t, s.Set(ctx, "http://ha", "tok"), &storageErr)
	assert.Nil(t, s.Get(ctx))
}
