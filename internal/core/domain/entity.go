package domain

import "strings"

const (
	ENTITY_STATE_UNAVAILABLE = "unavailable"
	ENTITY_STATE_UNKNOWN     = "unknown"

	ATTR_FRIENDLY_NAME       = "friendly_name"
	ATTR_UNIT_OF_MEASUREMENT = "unit_of_measurement"
	ATTR_DEVICE_CLASS        = "device_class"

	DOMAIN_SENSOR        = "sensor"
	DOMAIN_BINARY_SENSOR = "binary_sensor"
	DOMAIN_CLIMATE       = "climate"
	DOMAIN_WEATHER       = "weather"
	DOMAIN_LIGHT         = "light"
	DOMAIN_SWITCH        = "switch"
	DOMAIN_FAN           = "fan"
	DOMAIN_COVER         = "cover"
	DOMAIN_LOCK          = "lock"
	DOMAIN_CAMERA        = "camera"
)

// RemoteEntity is a state object as returned by the Home Assistant REST API.
type RemoteEntity struct {
	EntityId    string           `json:"entity_id"`
	State       string           `json:"state"`
	Attributes  EntityAttributes `json:"attributes"`
	LastChanged string           `json:"last_changed"`
	LastUpdated string           `json:"last_updated"`
}

// EntityAttributes is the open attribute map of a remote entity.
type EntityAttributes map[string]any

func (a EntityAttributes) str(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

func (a EntityAttributes) FriendlyName() string {
	return a.str(ATTR_FRIENDLY_NAME)
}

func (a EntityAttributes) UnitOfMeasurement() string {
	return a.str(ATTR_UNIT_OF_MEASUREMENT)
}

func (a EntityAttributes) DeviceClass() string {
	return a.str(ATTR_DEVICE_CLASS)
}

// Domain returns the segment of the entity id before the first dot.
func (e RemoteEntity) Domain() string {
	return EntityDomain(e.EntityId)
}

func EntityDomain(entityId string) string {
	domain, _, _ := strings.Cut(entityId, ".")
	return domain
}

type ConnectionConfig struct {
	URL   string
	Token string
}

// Complete reports whether both url and token are present.
func (c *ConnectionConfig) Complete() bool {
	return c != nil && c.URL != "" && c.Token != ""
}

func NormalizeURL(url string) string {
	return strings.TrimSuffix(url, "/")
}
