package port

import (
	"context"
	"encoding/json"

	"github.com/berfenger/homedash/internal/core/domain"
)

type EntityClient interface {
	CheckConnectivity(ctx context.Context) bool
	FetchAllEntities(ctx context.Context) ([]domain.RemoteEntity, error)
	FetchEntity(ctx context.Context, entityId string) (*domain.RemoteEntity, error)
	InvokeService(ctx context.Context, serviceDomain, service string, payload map[string]any) (json.RawMessage, error)
}
