package service

import (
	"context"
	"encoding/json"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	"github.com/stretchr/testify/mock"
)

type entityClientMock struct {
	mock.Mock
}

var _ port.EntityClient = (*entityClientMock)(nil)

func (m *entityClientMock) CheckConnectivity(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *entityClientMock) FetchAllEntities(ctx context.Context) ([]domain.RemoteEntity, error) {
	args := m.Called(ctx)
	entities, _ := args.Get(0).([]domain.RemoteEntity)
	return entities, args.Error(1)
}

func (m *entityClientMock) FetchEntity(ctx context.Context, entityId string) (*domain.RemoteEntity, error) {
	args := m.Called(ctx, entityId)
	entity, _ := args.Get(0).(*domain.RemoteEntity)
	return entity, args.Error(1)
}

func (m *entityClientMock) InvokeService(ctx context.Context, serviceDomain, service string, payload map[string]any) (json.RawMessage, error) {
	args := m.Called(ctx, serviceDomain, service, payload)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

type memoryConfigStore struct {
	cfg      *domain.ConnectionConfig
	setErr   error
	clearErr error
}

func (s *memoryConfigStore) Get(ctx context.Context) *domain.ConnectionConfig {
	if !s.cfg.Complete() {
		return nil
	}
	c := *s.cfg
	return &c
}

func (s *memoryConfigStore) Set(ctx context.Context, url, token string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.cfg = &domain.ConnectionConfig{URL: domain.NormalizeURL(url), Token: token}
	return nil
}

func (s *memoryConfigStore) Clear(ctx context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.cfg = nil
	return nil
}

type staticFixtures struct{}

func (staticFixtures) Sensors() []domain.Sensor { return domain.MockSensors() }
func (staticFixtures) Rooms() []domain.Room     { return domain.MockRooms() }

func entity(id, state string, attrs domain.EntityAttributes) domain.RemoteEntity {
	if attrs == nil {
		attrs = domain.EntityAttributes{}
	}
	return domain.RemoteEntity{
		EntityId:    id,
		State:       state,
		Attributes:  attrs,
		LastChanged: "2024-05-01T10:00:00+00:00",
		LastUpdated: "2024-05-01T10:00:00.123456+00:00",
	}
}
