package domain

import "time"

type SensorType string

const (
	SENSOR_TYPE_TEMPERATURE SensorType = "temperature"
	SENSOR_TYPE_HUMIDITY    SensorType = "humidity"
	SENSOR_TYPE_CO2         SensorType = "co2"
	SENSOR_TYPE_MOTION      SensorType = "motion"
	SENSOR_TYPE_DOOR        SensorType = "door"
	SENSOR_TYPE_LIGHT       SensorType = "light"
)

type SensorStatus string

const (
	SENSOR_STATUS_NORMAL   SensorStatus = "normal"
	SENSOR_STATUS_WARNING  SensorStatus = "warning"
	SENSOR_STATUS_CRITICAL SensorStatus = "critical"
)

// DataSource selects where the dashboard reads sensor state from.
type DataSource string

const (
	DATA_SOURCE_MOCK          DataSource = "mock"
	DATA_SOURCE_HOMEASSISTANT DataSource = "homeassistant"
)

func ParseDataSource(s string) (DataSource, bool) {
	switch DataSource(s) {
	case DATA_SOURCE_MOCK, DATA_SOURCE_HOMEASSISTANT:
		return DataSource(s), true
	}
	return "", false
}

type DeviceAction string

const (
	DEVICE_ACTION_ON     DeviceAction = "on"
	DEVICE_ACTION_OFF    DeviceAction = "off"
	DEVICE_ACTION_TOGGLE DeviceAction = "toggle"
)

func ParseDeviceAction(s string) (DeviceAction, error) {
	switch DeviceAction(s) {
	case DEVICE_ACTION_ON, DEVICE_ACTION_OFF, DEVICE_ACTION_TOGGLE:
		return DeviceAction(s), nil
	}
	return "", ErrInvalidAction
}

type Sensor struct {
	Id          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        SensorType   `json:"type" yaml:"type"`
	Value       float64      `json:"value" yaml:"value"`
	Unit        string       `json:"unit" yaml:"unit"`
	Room        string       `json:"room" yaml:"room"`
	Status      SensorStatus `json:"status" yaml:"status"`
	LastUpdated time.Time    `json:"lastUpdated" yaml:"lastUpdated"`
}

type Room struct {
	Id      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Icon    string   `json:"icon" yaml:"icon"`
	Sensors []string `json:"sensors" yaml:"sensors"`
}

type SensorReading struct {
	SensorId  string    `json:"sensorId"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

var sensorIcons = map[SensorType]string{
	SENSOR_TYPE_TEMPERATURE: "🌡️",
	SENSOR_TYPE_HUMIDITY:    "💧",
	SENSOR_TYPE_CO2:         "🫧",
	SENSOR_TYPE_MOTION:      "👁️",
	SENSOR_TYPE_DOOR:        "🚪",
	SENSOR_TYPE_LIGHT:       "💡",
}

func SensorIcon(t SensorType) string {
	if icon, ok := sensorIcons[t]; ok {
		return icon
	}
	return "◉"
}
