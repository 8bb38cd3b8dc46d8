package service

import "github.com/berfenger/homedash/internal/core/domain"

type Summary struct {
	Sensors            int     `json:"sensors"`
	Rooms              int     `json:"rooms"`
	Normal             int     `json:"normal"`
	Warning            int     `json:"warning"`
	Critical           int     `json:"critical"`
	AverageTemperature float64 `json:"averageTemperature"`
}

func Summarize(sensors []domain.Sensor, rooms []domain.Room) Summary {
	summary := Summary{Sensors: len(sensors), Rooms: len(rooms)}
	var tempSum float64
	var tempCount int
	for _, sensor := range sensors {
		switch sensor.Status {
		case domain.SENSOR_STATUS_NORMAL:
			summary.Normal++
		case domain.SENSOR_STATUS_WARNING:
			summary.Warning++
		case domain.SENSOR_STATUS_CRITICAL:
			summary.Critical++
		}
		if sensor.Type == domain.SENSOR_TYPE_TEMPERATURE {
			tempSum += sensor.Value
			tempCount++
		}
	}
	if tempCount > 0 {
		summary.AverageTemperature = tempSum / float64(tempCount)
	}
	return summary
}

// RoomDetail is a room with its member sensors resolved.
type RoomDetail struct {
	Room        domain.Room     `json:"room"`
	Sensors     []domain.Sensor `json:"sensors"`
	Temperature *domain.Sensor  `json:"temperature,omitempty"`
	Humidity    *domain.Sensor  `json:"humidity,omitempty"`
	CO2         *domain.Sensor  `json:"co2,omitempty"`
	Count       int             `json:"count"`
}

// RoomStats resolves the room members against a sensor batch. Ids missing
// from the batch are skipped.
func RoomStats(room domain.Room, sensors []domain.Sensor) RoomDetail {
	byId := make(map[string]domain.Sensor, len(sensors))
	for _, sensor := range sensors {
		byId[sensor.Id] = sensor
	}
	detail := RoomDetail{Room: room, Sensors: []domain.Sensor{}}
	for _, id := range room.Sensors {
		sensor, ok := byId[id]
		if !ok {
			continue
		}
		detail.Sensors = append(detail.Sensors, sensor)
	}
	for i := range detail.Sensors {
		sensor := &detail.Sensors[i]
		switch {
		case sensor.Type == domain.SENSOR_TYPE_TEMPERATURE && detail.Temperature == nil:
			detail.Temperature = sensor
		case sensor.Type == domain.SENSOR_TYPE_HUMIDITY && detail.Humidity == nil:
			detail.Humidity = sensor
		case sensor.Type == domain.SENSOR_TYPE_CO2 && detail.CO2 == nil:
			detail.CO2 = sensor
		}
	}
	detail.Count = len(detail.Sensors)
	return detail
}

// FilterByType returns all sensors when t is empty.
func FilterByType(sensors []domain.Sensor, t domain.SensorType) []domain.Sensor {
	if t == "" {
		return sensors
	}
	filtered := []domain.Sensor{}
	for _, sensor := range sensors {
		if sensor.Type == t {
			filtered = append(filtered, sensor)
		}
	}
	return filtered
}

func FindRoom(rooms []domain.Room, id string) (domain.Room, bool) {
	for _, room := range rooms {
		if room.Id == id {
			return room, true
		}
	}
	return domain.Room{}, false
}
