package fixtures

import (
	"os"
	"time"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type file struct {
	Sensors []domain.Sensor `yaml:"sensors"`
	Rooms   []domain.Room   `yaml:"rooms"`
}

// Fixtures serves a fixed sensor and room list. Callers receive copies.
type Fixtures struct {
	sensors []domain.Sensor
	rooms   []domain.Room
}

var _ port.FixtureSource = (*Fixtures)(nil)

// Default returns the built-in demonstration data.
func Default() *Fixtures {
	return &Fixtures{sensors: domain.MockSensors(), rooms: domain.MockRooms()}
}

// Load reads fixtures from a YAML file. An empty path yields the defaults.
// Sections missing from the file fall back to the built-in lists.
func Load(path string) (*Fixtures, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading fixtures")
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixtures, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing fixtures")
	}
	fx := Default()
	if len(f.Sensors) > 0 {
		now := time.Now()
		for i := range f.Sensors {
			if f.Sensors[i].LastUpdated.IsZero() {
				f.Sensors[i].LastUpdated = now
			}
			if f.Sensors[i].Status == "" {
				f.Sensors[i].Status = domain.SENSOR_STATUS_NORMAL
			}
		}
		fx.sensors = f.Sensors
	}
	if len(f.Rooms) > 0 {
		for i := range f.Rooms {
			if f.Rooms[i].Sensors == nil {
				f.Rooms[i].Sensors = []string{}
			}
		}
		fx.rooms = f.Rooms
	}
	return fx, nil
}

func (f *Fixtures) Sensors() []domain.Sensor {
	return append([]domain.Sensor(nil), f.sensors...)
}

func (f *Fixtures) Rooms() []domain.Room {
	rooms := make([]domain.Room, len(f.rooms))
	for i, r := range f.rooms {
		r.Sensors = append([]string{}, r.Sensors...)
		rooms[i] = r
	}
	return rooms
}
