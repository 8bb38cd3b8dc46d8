package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/berfenger/homedash/internal/app"
	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadsLiveData(t *testing.T) {

	assert := assert.New(t)

	assert.True(readsLiveData(sensorsCmd))
	assert.True(readsLiveData(roomsCmd))
	assert.True(readsLiveData(summaryCmd))
	assert.True(readsLiveData(controlCmd))
	assert.True(readsLiveData(statusCmd))

	assert.False(readsLiveData(versionCmd))
	assert.False(readsLiveData(configureCmd))
	assert.False(readsLiveData(disconnectCmd))
}

func TestSelectSourceSkipsOfflineCommands(t *testing.T) {

	// no data source in the context, any lookup would panic
	versionCmd.SetContext(context.Background())
	assert.NoError(t, selectSource(versionCmd, nil))
}

func TestSelectSourceKeepsMockWithoutCredentials(t *testing.T) {

	require := require.New(t)

	cfg := util.LoadTestConfig()
	cfg.Store.Path = filepath.Join(t.TempDir(), "homedash.db")
	home, err := app.NewHome(cfg, zap.NewNop())
	require.NoError(err)
	defer home.Close()

	sensorsCmd.SetContext(context.WithValue(context.Background(), homeKey{}, home))
	require.NoError(selectSource(sensorsCmd, nil))
	require.Equal(domain.DATA_SOURCE_MOCK, home.DataSource())
}
