package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	"go.uber.org/zap"
)

var sensorDomains = map[string]bool{
	domain.DOMAIN_SENSOR:        true,
	domain.DOMAIN_BINARY_SENSOR: true,
	domain.DOMAIN_CLIMATE:       true,
	domain.DOMAIN_WEATHER:       true,
	domain.DOMAIN_LIGHT:         true,
	domain.DOMAIN_SWITCH:        true,
	domain.DOMAIN_FAN:           true,
}

// switchable domains use turn_on/turn_off services
var switchableDomains = map[string]bool{
	domain.DOMAIN_LIGHT:   true,
	domain.DOMAIN_SWITCH:  true,
	domain.DOMAIN_FAN:     true,
	domain.DOMAIN_CLIMATE: true,
}

// DataSourceService selects between the fixture data and the live Home
// Assistant instance. Live failures never reach the caller of Sensors or
// Rooms, they degrade to fixtures for that call only.
type DataSourceService struct {
	store    port.ConfigStore
	client   port.EntityClient
	fixtures port.FixtureSource
	logger   *zap.Logger

	mu     sync.RWMutex
	source domain.DataSource
}

var _ port.SmartHome = (*DataSourceService)(nil)

func NewDataSourceService(store port.ConfigStore, client port.EntityClient, fixtures port.FixtureSource, logger *zap.Logger) *DataSourceService {
	return &DataSourceService{
		store:    store,
		client:   client,
		fixtures: fixtures,
		logger:   logger,
		source:   domain.DATA_SOURCE_MOCK,
	}
}

func (s *DataSourceService) DataSource() domain.DataSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *DataSourceService) SetDataSource(source domain.DataSource) {
	s.mu.Lock()
	prev := s.source
	s.source = source
	s.mu.Unlock()
	if prev != source {
		s.logger.Info("data source changed", zap.String("from", string(prev)), zap.String("to", string(source)))
	}
}

func (s *DataSourceService) live() bool {
	return s.DataSource() == domain.DATA_SOURCE_HOMEASSISTANT
}

func (s *DataSourceService) Sensors(ctx context.Context) []domain.Sensor {
	if !s.live() {
		return s.fixtures.Sensors()
	}
	entities, err := s.sensorEntities(ctx)
	if err != nil {
		s.logger.Warn("fetching sensors from home assistant failed, serving fixtures", zap.Error(err))
		return s.fixtures.Sensors()
	}
	sensors := make([]domain.Sensor, 0, len(entities))
	for _, entity := range entities {
		sensors = append(sensors, NormalizeEntity(entity))
	}
	return sensors
}

func (s *DataSourceService) Rooms(ctx context.Context) []domain.Room {
	if !s.live() {
		return s.fixtures.Rooms()
	}
	entities, err := s.sensorEntities(ctx)
	if err != nil {
		s.logger.Warn("fetching rooms from home assistant failed, serving fixtures", zap.Error(err))
		return s.fixtures.Rooms()
	}
	return AggregateRooms(entities)
}

func (s *DataSourceService) SensorHistory(ctx context.Context, sensorId string, hours int) []domain.SensorReading {
	if s.live() {
		s.logger.Warn("sensor history is not available from home assistant",
			zap.String("sensor", sensorId), zap.Int("hours", hours))
	}
	return []domain.SensorReading{}
}

func (s *DataSourceService) ControlDevice(ctx context.Context, entityId string, action domain.DeviceAction) error {
	if !s.live() {
		return domain.ErrSourceMismatch
	}
	if _, err := domain.ParseDeviceAction(string(action)); err != nil {
		return err
	}
	entityDomain := domain.EntityDomain(entityId)
	service := ServiceForAction(entityDomain, action)
	s.logger.Debug("calling service",
		zap.String("domain", entityDomain), zap.String("service", service), zap.String("entity", entityId))
	if _, err := s.client.InvokeService(ctx, entityDomain, service, map[string]any{"entity_id": entityId}); err != nil {
		return fmt.Errorf("control %s: %w", entityId, err)
	}
	return nil
}

// ServiceForAction maps a device action onto a Home Assistant service name.
func ServiceForAction(entityDomain string, action domain.DeviceAction) string {
	if action == domain.DEVICE_ACTION_TOGGLE || !switchableDomains[entityDomain] {
		return string(action)
	}
	if action == domain.DEVICE_ACTION_ON {
		return "turn_on"
	}
	return "turn_off"
}

func (s *DataSourceService) Configure(ctx context.Context, url, token string) error {
	if err := s.store.Set(ctx, url, token); err != nil {
		return err
	}
	if !s.client.CheckConnectivity(ctx) {
		return domain.ErrConnectionFailed
	}
	s.SetDataSource(domain.DATA_SOURCE_HOMEASSISTANT)
	return nil
}

func (s *DataSourceService) Disconnect(ctx context.Context) error {
	err := s.store.Clear(ctx)
	s.SetDataSource(domain.DATA_SOURCE_MOCK)
	return err
}

func (s *DataSourceService) Reconnect(ctx context.Context) error {
	if !s.store.Get(ctx).Complete() {
		return domain.ErrNotConfigured
	}
	if !s.client.CheckConnectivity(ctx) {
		return domain.ErrConnectionFailed
	}
	s.SetDataSource(domain.DATA_SOURCE_HOMEASSISTANT)
	return nil
}

func (s *DataSourceService) IsConnected(ctx context.Context) bool {
	return s.client.CheckConnectivity(ctx)
}

func (s *DataSourceService) sensorEntities(ctx context.Context) ([]domain.RemoteEntity, error) {
	entities, err := s.client.FetchAllEntities(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSensorEntities(entities), nil
}

// FilterSensorEntities keeps the entities whose domain is shown on the dashboard.
func FilterSensorEntities(entities []domain.RemoteEntity) []domain.RemoteEntity {
	filtered := make([]domain.RemoteEntity, 0, len(entities))
	for _, entity := range entities {
		if sensorDomains[entity.Domain()] {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}
