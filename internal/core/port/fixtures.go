package port

import "github.com/berfenger/homedash/internal/core/domain"

// FixtureSource provides the static sensor and room lists served in mock mode
// and as fallback when the live source fails.
type FixtureSource interface {
	Sensors() []domain.Sensor
	Rooms() []domain.Room
}
