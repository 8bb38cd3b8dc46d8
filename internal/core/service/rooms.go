package service

import "github.com/berfenger/homedash/internal/core/domain"

const defaultDomainIcon = "🏠"

var domainIcons = map[string]string{
	domain.DOMAIN_SENSOR:        "📊",
	domain.DOMAIN_BINARY_SENSOR: "◉",
	domain.DOMAIN_CLIMATE:       "🌡️",
	domain.DOMAIN_WEATHER:       "🌤️",
	domain.DOMAIN_LIGHT:         "💡",
	domain.DOMAIN_SWITCH:        "🔌",
	domain.DOMAIN_FAN:           "💨",
	domain.DOMAIN_COVER:         "🪟",
	domain.DOMAIN_LOCK:          "🔒",
	domain.DOMAIN_CAMERA:        "📷",
}

func DomainIcon(entityDomain string) string {
	if icon, ok := domainIcons[entityDomain]; ok {
		return icon
	}
	return defaultDomainIcon
}

// AggregateRooms builds one synthetic room per entity domain. Rooms keep the
// order in which their domain was first seen and members keep fetch order.
func AggregateRooms(entities []domain.RemoteEntity) []domain.Room {
	rooms := []domain.Room{}
	index := make(map[string]int)
	for _, entity := range entities {
		entityDomain := entity.Domain()
		i, ok := index[entityDomain]
		if !ok {
			i = len(rooms)
			index[entityDomain] = i
			rooms = append(rooms, domain.Room{
				Id:      entityDomain,
				Name:    capitalize(entityDomain),
				Icon:    DomainIcon(entityDomain),
				Sensors: []string{},
			})
		}
		rooms[i].Sensors = append(rooms[i].Sensors, entity.EntityId)
	}
	return rooms
}
