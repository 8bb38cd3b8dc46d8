package service

import (
	"testing"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRoomsGroupsByDomain(t *testing.T) {

	require := require.New(t)

	rooms := AggregateRooms([]domain.RemoteEntity{
		entity("sensor.a", "1", nil),
		entity("light.b", "on", nil),
		entity("sensor.c", "2", nil),
		entity("vacuum.d", "docked", nil),
	})

	require.Len(rooms, 3)
	require.Equal(domain.Room{Id: "sensor", Name: "Sensor", Icon: "📊", Sensors: []string{"sensor.a", "sensor.c"}}, rooms[0])
	require.Equal(domain.Room{Id: "light", Name: "Light", Icon: "💡", Sensors: []string{"light.b"}}, rooms[1])
	require.Equal(domain.Room{Id: "vacuum", Name: "Vacuum", Icon: "🏠", Sensors: []string{"vacuum.d"}}, rooms[2])
}

func TestAggregateRoomsEmpty(t *testing.T) {

	rooms := AggregateRooms(nil)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestDomainIcon(t *testing.T) {

	assert := assert.New(t)

	assert.Equal("🔌", DomainIcon("switch"))
	assert.Equal("🔒", DomainIcon("lock"))
	assert.Equal("🏠", DomainIcon("automation"))
}
