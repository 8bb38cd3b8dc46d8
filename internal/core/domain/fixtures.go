package domain

import "time"

// MockSensors returns the built-in demonstration sensors. Fixture statuses are
// static display values, they are not recomputed from thresholds.
func MockSensors() []Sensor {
	now := time.Now()
	return []Sensor{
		{Id: "temp-1", Name: "Living Room Temp", Type: SENSOR_TYPE_TEMPERATURE, Value: 72, Unit: "°F", Room: "Living Room", Status: SENSOR_STATUS_NORMAL, LastUpdated: now},
		{Id: "hum-1", Name: "Living Room Humidity", Type: SENSOR_TYPE_HUMIDITY, Value: 45, Unit: "%", Room: "Living Room", Status: SENSOR_STATUS_NORMAL, LastUpdated: now},
		{Id: "co2-1", Name: "Office CO₂", Type: SENSOR_TYPE_CO2, Value: 650, Unit: "ppm", Room: "Office", Status: SENSOR_STATUS_NORMAL, LastUpdated: now},
		{Id: "temp-2", Name: "Bedroom Temp", Type: SENSOR_TYPE_TEMPERATURE, Value: 68, Unit: "°F", Room: "Bedroom", Status: SENSOR_STATUS_NORMAL, LastUpdated: now},
		{Id: "hum-2", Name: "Kitchen Humidity", Type: SENSOR_TYPE_HUMIDITY, Value: 52, Unit: "%", Room: "Kitchen", Status: SENSOR_STATUS_WARNING, LastUpdated: now},
		{Id: "co2-2", Name: "Living Room CO₂", Type: SENSOR_TYPE_CO2, Value: 1100, Unit: "ppm", Room: "Living Room", Status: SENSOR_STATUS_CRITICAL, LastUpdated: now},
	}
}

func MockRooms() []Room {
	return []Room{
		{Id: "living", Name: "Living Room", Icon: "🛋️", Sensors: []string{"temp-1", "hum-1", "co2-1"}},
		{Id: "bedroom", Name: "Bedroom", Icon: "🛏️", Sensors: []string{"temp-2"}},
		{Id: "kitchen", Name: "Kitchen", Icon: "🍳", Sensors: []string{"hum-2"}},
		{Id: "office", Name: "Office", Icon: "💼", Sensors: []string{"co2-1"}},
	}
}
