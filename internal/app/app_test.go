package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewHome(t *testing.T) {

	require := require.New(t)

	cfg := util.LoadTestConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "nested", "homedash.db")

	home, err := NewHome(cfg, zap.NewNop())
	require.NoError(err)
	defer home.Close()

	require.Equal(domain.DATA_SOURCE_MOCK, home.DataSource())
	require.Len(home.Sensors(context.Background()), 6)
	require.ErrorIs(home.Reconnect(context.Background()), domain.ErrNotConfigured)
	require.FileExists(cfg.Store.Path)
}

func TestNewHomeBadFixtures(t *testing.T) {

	cfg := util.LoadTestConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "homedash.db")
	cfg.Fixtures.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewHome(cfg, zap.NewNop())
	require.Error(t, err)
}
