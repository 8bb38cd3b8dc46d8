package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {

	assert := assert.New(t)

	fx := Default()
	assert.Len(fx.Sensors(), 6)
	assert.Len(fx.Rooms(), 4)
	assert.Equal("temp-1", fx.Sensors()[0].Id)
}

func TestLoadEmptyPath(t *testing.T) {

	fx, err := Load("")
	require.NoError(t, err)
	assert.Len(t, fx.Sensors(), 6)
}

func TestLoadFile(t *testing.T) {

	require := require.New(t)

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(os.WriteFile(path, []byte(`
sensors:
  - id: garage-temp
    name: Garage Temp
    type: temperature
    value: 51
    unit: "°F"
    room: Garage
    status: critical
  - id: garage-door
    name: Garage Door
    type: door
    value: 0
rooms:
  - id: garage
    name: Garage
    icon: "🚗"
    sensors: [garage-temp, garage-door]
`), 0600))

	fx, err := Load(path)
	require.NoError(err)

	sensors := fx.Sensors()
	require.Len(sensors, 2)
	require.Equal(domain.SENSOR_STATUS_CRITICAL, sensors[0].Status)
	require.Equal(51.0, sensors[0].Value)
	require.Equal(domain.SENSOR_STATUS_NORMAL, sensors[1].Status)
	require.False(sensors[1].LastUpdated.IsZero())

	rooms := fx.Rooms()
	require.Len(rooms, 1)
	require.Equal([]string{"garage-temp", "garage-door"}, rooms[0].Sensors)
}

func TestParseKeepsDefaultRooms(t *testing.T) {

	fx, err := Parse([]byte("sensors:\n  - id: x\n    type: co2\n    value: 400\n"))
	require.NoError(t, err)
	assert.Len(t, fx.Sensors(), 1)
	assert.Len(t, fx.Rooms(), 4)
}

func TestLoadErrors(t *testing.T) {

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("sensors: [: bad"))
	assert.Error(t, err)
}

func TestCallersGetCopies(t *testing.T) {

	fx := Default()
	rooms := fx.Rooms()
	rooms[0].Sensors[0] = "changed"
	assert.Equal(t, "temp-1", fx.Rooms()[0].Sensors[0])
}
