package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/berfenger/homedash/internal/core/domain"
)

// statusThreshold holds the bounds outside of which a reading is flagged.
// Bounds that do not apply are set to +/-Inf.
type statusThreshold struct {
	WarningAbove  float64
	WarningBelow  float64
	CriticalAbove float64
	CriticalBelow float64
}

var statusThresholds = map[domain.SensorType]statusThreshold{
	domain.SENSOR_TYPE_TEMPERATURE: {WarningAbove: 80, WarningBelow: 60, CriticalAbove: 85, CriticalBelow: 55},
	domain.SENSOR_TYPE_HUMIDITY:    {WarningAbove: 60, WarningBelow: 30, CriticalAbove: 70, CriticalBelow: 20},
	domain.SENSOR_TYPE_CO2:         {WarningAbove: 800, WarningBelow: math.Inf(-1), CriticalAbove: 1000, CriticalBelow: math.Inf(-1)},
}

func (t statusThreshold) status(value float64) domain.SensorStatus {
	status := domain.SENSOR_STATUS_NORMAL
	if value > t.WarningAbove || value < t.WarningBelow {
		status = domain.SENSOR_STATUS_WARNING
	}
	// critical wins over warning
	if value > t.CriticalAbove || value < t.CriticalBelow {
		status = domain.SENSOR_STATUS_CRITICAL
	}
	return status
}

// NormalizeEntity maps a Home Assistant entity into a dashboard sensor.
// It is a pure function: same entity in, same sensor out.
func NormalizeEntity(entity domain.RemoteEntity) domain.Sensor {
	entityDomain := entity.Domain()
	unit := entity.Attributes.UnitOfMeasurement()
	sensorType := InferSensorType(entityDomain, entity.Attributes.DeviceClass(), unit)

	value, status := InferStatus(sensorType, entity.State)

	name := entity.Attributes.FriendlyName()
	if name == "" {
		name = entity.EntityId
	}

	return domain.Sensor{
		Id:          entity.EntityId,
		Name:        name,
		Type:        sensorType,
		Value:       value,
		Unit:        unit,
		Room:        capitalize(entityDomain),
		Status:      status,
		LastUpdated: parseTimestamp(entity.LastUpdated),
	}
}

// InferSensorType applies the type rules in order, first match wins.
func InferSensorType(entityDomain, deviceClass, unit string) domain.SensorType {
	switch {
	case deviceClass == "temperature" || unit == "°F" || unit == "°C":
		return domain.SENSOR_TYPE_TEMPERATURE
	case deviceClass == "humidity" || unit == "%":
		return domain.SENSOR_TYPE_HUMIDITY
	case deviceClass == "carbon_dioxide" || unit == "ppm":
		return domain.SENSOR_TYPE_CO2
	case deviceClass == "motion" || deviceClass == "moving":
		return domain.SENSOR_TYPE_MOTION
	case deviceClass == "door" || deviceClass == "opening":
		return domain.SENSOR_TYPE_DOOR
	case entityDomain == domain.DOMAIN_LIGHT || entityDomain == domain.DOMAIN_SWITCH:
		return domain.SENSOR_TYPE_LIGHT
	}
	return domain.SENSOR_TYPE_LIGHT
}

// decimalPrefix matches the leading decimal number of a state, so "21.5 °C"
// reads 21.5 and "1_0" reads 1. Hex, inf and nan spellings do not match.
var decimalPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// parseState reads the leading decimal number of a state. Non finite values
// are rejected since they cannot be encoded as JSON.
func parseState(state string) (float64, bool) {
	literal := decimalPrefix.FindString(strings.TrimSpace(state))
	if literal == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// InferStatus parses the raw state and derives the health status. A state
// that is not a number yields value 0 and status critical.
func InferStatus(sensorType domain.SensorType, state string) (float64, domain.SensorStatus) {
	value, ok := parseState(state)
	if !ok {
		return 0, domain.SENSOR_STATUS_CRITICAL
	}

	status := domain.SENSOR_STATUS_NORMAL
	if t, ok := statusThresholds[sensorType]; ok {
		status = t.status(value)
	}

	// sentinels override any threshold result
	if state == domain.ENTITY_STATE_UNAVAILABLE || state == domain.ENTITY_STATE_UNKNOWN {
		status = domain.SENSOR_STATUS_CRITICAL
	}
	return value, status
}

func parseTimestamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
