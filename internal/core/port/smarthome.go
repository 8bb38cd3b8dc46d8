package port

import (
	"context"

	"github.com/berfenger/homedash/internal/core/domain"
)

// SmartHome is the data source surface consumed by the HTTP API, the CLI and
// the snapshot poller.
type SmartHome interface {
	DataSource() domain.DataSource
	SetDataSource(source domain.DataSource)
	Sensors(ctx context.Context) []domain.Sensor
	Rooms(ctx context.Context) []domain.Room
	SensorHistory(ctx context.Context, sensorId string, hours int) []domain.SensorReading
	ControlDevice(ctx context.Context, entityId string, action domain.DeviceAction) error
	Configure(ctx context.Context, url, token string) error
	Disconnect(ctx context.Context) error
	Reconnect(ctx context.Context) error
	IsConnected(ctx context.Context) bool
}
