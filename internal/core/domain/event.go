package domain

import "fmt"

type SensorUpdateEventMixIn struct {
	Id string
}

type SensorUpdateEvent interface {
	SensorUpdateEvent() string
	SensorId() string
}

func (e SensorUpdateEventMixIn) SensorUpdateEvent() string {
	return fmt.Sprintf("%T", e)
}

func (e SensorUpdateEventMixIn) SensorId() string {
	return e.Id
}

// SensorStateEvent carries one normalized sensor of a polled snapshot.
type SensorStateEvent struct {
	SensorUpdateEventMixIn
	Sensor Sensor
}

type DataSourceUpdateEvent struct {
	SensorUpdateEventMixIn
	Source DataSource
}

// BridgeStateUpdateEvent reports the availability of the MQTT bridge itself.
type BridgeStateUpdateEvent struct {
	SensorUpdateEventMixIn
	Value bool
}

func NewBridgeStateUpdateEvent(online bool) BridgeStateUpdateEvent {
	return BridgeStateUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{Id: "bridge"},
		Value:                  online,
	}
}

func NewSensorStateEvent(sensor Sensor) SensorStateEvent {
	return SensorStateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{Id: sensor.Id},
		Sensor:                 sensor,
	}
}
