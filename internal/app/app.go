package app

import (
	"time"

	"github.com/berfenger/homedash/internal/adapter/fixtures"
	"github.com/berfenger/homedash/internal/adapter/homeassistant"
	"github.com/berfenger/homedash/internal/adapter/store"
	"github.com/berfenger/homedash/internal/config"
	"github.com/berfenger/homedash/internal/core/service"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Home is the data source stack shared by the api server and the cli.
type Home struct {
	*service.DataSourceService
	Store *store.SQLiteConfigStore
}

func NewHome(cfg config.Config, logger *zap.Logger) (*Home, error) {
	configStore, err := store.Open(store.Config{
		Path:        cfg.Store.Path,
		BusyTimeout: cfg.Store.BusyTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	fixtureSource, err := fixtures.Load(cfg.Fixtures.File)
	if err != nil {
		configStore.Close()
		return nil, errors.Wrap(err, "loading fixtures")
	}

	client := homeassistant.NewClient(configStore,
		time.Duration(cfg.HomeAssistant.TimeoutMillis)*time.Millisecond, logger)

	return &Home{
		DataSourceService: service.NewDataSourceService(configStore, client, fixtureSource, logger),
		Store:             configStore,
	}, nil
}

func (h *Home) Close() error {
	return h.Store.Close()
}

// NewLogger builds the production zap logger at the configured level.
func NewLogger(cfg config.Config) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zap.Must(zapCfg.Build())
}
