package port

import (
	"context"

	"github.com/berfenger/homedash/internal/core/domain"
)

// ConfigStore persists the Home Assistant connection credentials.
type ConfigStore interface {
	// Get returns nil when no complete configuration is stored or when the
	// underlying storage cannot be read.
	Get(ctx context.Context) *domain.ConnectionConfig
	Set(ctx context.Context, url, token string) error
	Clear(ctx context.Context) error
}
