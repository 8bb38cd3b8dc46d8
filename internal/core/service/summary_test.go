package service

import (
	"testing"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeFixtures(t *testing.T) {

	assert := assert.New(t)

	s := Summarize(domain.MockSensors(), domain.MockRooms())
	assert.Equal(6, s.Sensors)
	assert.Equal(4, s.Rooms)
	assert.Equal(4, s.Normal)
	assert.Equal(1, s.Warning)
	assert.Equal(1, s.Critical)
	assert.Equal(70.0, s.AverageTemperature)
}

func TestSummarizeWithoutTemperature(t *testing.T) {

	s := Summarize([]domain.Sensor{{Id: "h", Type: domain.SENSOR_TYPE_HUMIDITY, Value: 40}}, nil)
	assert.Equal(t, 0.0, s.AverageTemperature)
}

func TestRoomStats(t *testing.T) {

	require := require.New(t)

	rooms := domain.MockRooms()
	living, ok := FindRoom(rooms, "living")
	require.True(ok)

	detail := RoomStats(living, domain.MockSensors())
	require.Equal(3, detail.Count)
	require.NotNil(detail.Temperature)
	require.Equal("temp-1", detail.Temperature.Id)
	require.Equal("hum-1", detail.Humidity.Id)
	require.Equal("co2-1", detail.CO2.Id)

	_, ok = FindRoom(rooms, "garage")
	require.False(ok)
}

func TestRoomStatsSkipsUnknownIds(t *testing.T) {

	detail := RoomStats(domain.Room{Id: "r", Sensors: []string{"missing"}}, domain.MockSensors())
	assert.Equal(t, 0, detail.Count)
	assert.Nil(t, detail.Temperature)
}

func TestFilterByType(t *testing.T) {

	assert := assert.New(t)

	sensors := domain.MockSensors()
	assert.Len(FilterByType(sensors, domain.SENSOR_TYPE_CO2), 2)
	assert.Len(FilterByType(sensors, ""), 6)
	assert.Empty(FilterByType(sensors, domain.SENSOR_TYPE_DOOR))
}
